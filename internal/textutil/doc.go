// Package textutil provides the text normalization helpers shared by the
// planning and cutting packages: filesystem-safe filename stems derived from
// workbook labels, and header-cell normalization for the tolerant column
// matching the CSV and workbook readers rely on.
package textutil

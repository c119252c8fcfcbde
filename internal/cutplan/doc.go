// Package cutplan turns heterogeneous timestamp specifications into a
// validated, ordered cutting plan.
//
// Three builders share the Builder contract: Grid produces uniform
// fixed-length intervals from start/count/length parameters, CSVFile reads
// explicit start/end or start/duration rows, and Workbook reads a multi-sheet
// spreadsheet where every sheet becomes its own output subdirectory. The
// package also resolves which audio source feeds each workbook sheet, either
// uniformly or from an input-list mapping file.
//
// Row order is authoritative everywhere: intervals are never re-sorted, and
// sheets are processed in workbook order.
package cutplan

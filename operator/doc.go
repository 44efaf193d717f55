// Package operator implements query operators over storage tables.
//
// An Operator is single-shot: it is constructed with fixed inputs, executed
// once and then exposes its result through Output. Operators compose by
// taking other operators as input; TableWrapper and GetTable are the leaves.
//
// # Table Scan
//
// TableScan filters the rows of its input by comparing one column against a
// search value:
//
//	scan := operator.NewTableScan(operator.NewTableWrapper(t), 0, operator.GreaterThan, variant.Int32(2))
//	if err := scan.Execute(ctx); err != nil {
//	    return err
//	}
//	out := scan.Output()
//
// The output table has the schema of the input and a single chunk of
// ReferenceSegments that share one position list. Positions address the
// scanned table only; scanning a scan result yields positions into that
// result, not into the table it references.
//
// Each chunk is filtered by a strategy chosen from its segment encoding.
// Dictionary segments are filtered by comparing ValueIDs against dictionary
// bounds, without decoding rows. Chunks are filtered concurrently and the
// per-chunk matches are concatenated in chunk order.
//
// Comparisons follow cmp.Compare for every encoding. For floating-point
// columns a NaN equals another NaN and orders before every other value, so
// Equals with a NaN search value matches NaN rows and LessThan matches none.
package operator

// Package colstore provides an embedded in-memory columnar table store.
//
// Tables are split into chunks of a fixed row capacity. Each chunk holds one
// segment per column, stored uncompressed (value encoding), dictionary
// compressed, or as positions into another table (reference encoding).
// Encodings are transparent to readers: a value reads the same whichever
// encoding holds it.
//
// # Quick Start
//
//	ctx := context.Background()
//	store := colstore.New(colstore.WithChunkSize(65536))
//
//	_, _ = store.CreateTable("people",
//	    colstore.ColumnDefinition{Name: "name", Kind: variant.KindString},
//	    colstore.ColumnDefinition{Name: "age", Kind: variant.KindInt32},
//	)
//	_ = store.Insert(ctx, "people", variant.String("Hasso"), variant.Int32(72))
//
//	// Dictionary-encode every chunk.
//	_ = store.CompressAll(ctx, "people")
//
//	// Rows with age > 30, as a table of references into "people".
//	result, _ := store.Scan(ctx, "people", "age", operator.GreaterThan, variant.Int32(30))
//
// # Packages
//
//   - storage: tables, chunks, segment encodings and chunk compression
//   - operator: TableScan and its inputs
//   - catalog: caller-owned table registries
//   - variant: the typed value used for rows and search values
//   - model: identifiers, positions and the error taxonomy
//   - resource: limits shared by concurrent compressions
//
// # Concurrency
//
// Scans and compressions may run concurrently with each other. Compression
// replaces a chunk atomically, so a reader sees either the old or the new
// encoding of a chunk and never a mix. Appends to a table must not run
// concurrently with other writes to the same table.
package colstore

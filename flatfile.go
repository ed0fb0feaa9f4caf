// # FlatFile: Fixed-Width Record Codec for Go
//
// FlatFile parses and builds fixed field width flat files, the kind of layout legacy systems
// and mainframe extracts use: one record per line, no delimiters, every field occupying a
// column range determined purely by declaration order and width.
//
// # Features
//
// - Declarative field layouts with widths, padding fields, defaults, and aggressive overwrite.
// - Left-to-right filter (read) and formatter (write) pipelines built from named host
// operations, plain functions, or objects implementing `Filterer`.
// - Strict width enforcement via `RecordLengthError`; blank lines are skipped, not rejected.
// - `Record.MapInto` copies record values into an external model (`MapModel`, `StructModel`,
// or any `Model`) honouring override, aggressive, and default precedence.
// - Streaming `Reader` and buffered `Writer`, plus YAML layouts loaded with `LoadLayout`.
//
// # Getting Started
//
//	def := flatfile.New(flatfile.WithHost(stdfilters.Methods()))
//	def.Field("first_name", flatfile.Width(10))
//	def.Field("last_name", flatfile.Width(10))
//	def.Field("birthday", flatfile.Width(8), flatfile.Filter(flatfile.Named("int")))
//	def.Pad(flatfile.AutoName, flatfile.Width(2))
//
//	err := def.EachRecord(file, func(rec *flatfile.Record, line string) error {
//		fmt.Println(rec.DebugString())
//		return nil
//	})
//
// A Definition is built once and read many times: finish every declaration before the
// first Parse, Build, NewRecord, or Reader call. Declaring afterwards fails with ErrSchemaSealed.
package flatfile

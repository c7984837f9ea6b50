// bdoc-gen writes sample encoded documents to a directory, for use as
// fixtures and for eyeballing the wire layout.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"bdoc/pkg/codec"
	"bdoc/pkg/doc"
	"bdoc/pkg/wire"
)

func main() {
	outDir := flag.String("out", "testdata/docs", "output directory for encoded documents")
	flag.Parse()
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	oid, err := doc.NewObjectID()
	if err != nil {
		log.Fatal(err)
	}

	// 1) Flat document touching every scalar type
	flat := doc.NewDocument().
		Append("double", doc.Double(3.14)).
		Append("string", doc.String("hello")).
		Append("binary", doc.Binary{Subtype: wire.BinaryGeneric, Data: []byte{0xde, 0xad}}).
		Append("undefined", doc.Undefined{}).
		Append("oid", oid).
		Append("bool", doc.Boolean(true)).
		Append("when", doc.DateTime(1724700000000)).
		Append("null", doc.Null{}).
		Append("re", doc.Regex{Pattern: "^a+$", Options: "i"}).
		Append("ptr", doc.DBPointer{Namespace: "db.coll", ID: oid}).
		Append("js", doc.JavaScript("function(){}")).
		Append("sym", doc.Symbol("atom")).
		Append("i32", doc.Int32(-7)).
		Append("ts", doc.Timestamp{T: 1724700000, I: 1}).
		Append("i64", doc.Int64(1<<40)).
		Append("min", doc.MinKey{}).
		Append("max", doc.MaxKey{})
	writeOut(*outDir, "doc_scalars.bin", mustMarshal(flat))

	// 2) Nested depth-3 document
	nested := doc.NewDocument().
		Append("outer", doc.NewDocument().
			Append("middle", doc.NewDocument().
				Append("inner", doc.String("deep"))))
	writeOut(*outDir, "doc_nested.bin", mustMarshal(nested))

	// 3) Array mixing types
	mixed := doc.NewDocument().
		Append("items", doc.NewArray(
			doc.Boolean(true), doc.Null{}, doc.String("x"), doc.Int32(9),
			doc.NewArray(doc.Double(2.5)),
		))
	writeOut(*outDir, "doc_array.bin", mustMarshal(mixed))

	// 4) Code with scope
	cws := doc.NewDocument().
		Append("fn", &doc.CodeWithScope{
			Code:  "function(){ return n }",
			Scope: doc.NewDocument().Append("n", doc.Int32(42)),
		})
	writeOut(*outDir, "doc_code_scope.bin", mustMarshal(cws))

	fmt.Println("Generated sample documents in", *outDir)
}

func mustMarshal(d *doc.Document) []byte {
	b, err := codec.Marshal(d)
	if err != nil {
		log.Fatal(err)
	}
	return b
}

func writeOut(dir, name string, b []byte) {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, b, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%-24s %5d bytes  head: %s\n", name, len(b), shortHex(b, 64))
}

func shortHex(b []byte, n int) string {
	if len(b) == 0 {
		return ""
	}
	if n > len(b) {
		n = len(b)
	}
	enc := hex.EncodeToString(b[:n])
	var out []string
	for i := 0; i < len(enc); i += 4 {
		j := i + 4
		if j > len(enc) {
			j = len(enc)
		}
		out = append(out, enc[i:j])
	}
	return strings.Join(out, " ")
}

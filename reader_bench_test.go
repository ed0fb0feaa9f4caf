package flatfile

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func benchmarkData() []byte {
	return []byte(strings.Repeat(captainLine+"\n"+noPhoneLine+"\n"+hasPhone+"\n", 64))
}

func BenchmarkReader(b *testing.B) {
	data := benchmarkData()
	def := newPersonDefinition(b)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		r := def.NewReader(bytes.NewReader(data))
		for {
			if _, err := r.Read(); err != nil {
				if err == io.EOF {
					break
				}
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	def := newPersonDefinition(b)
	rec, err := def.ParseLine(captainLine)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := rec.Line(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMapInto(b *testing.B) {
	def := newPersonDefinition(b)
	rec, err := def.ParseLine(hasPhone)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := rec.MapInto(personModel("", "", "", nil)); err != nil {
			b.Fatal(err)
		}
	}
}

package jfeed_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/creachadair/jfeed"
	"github.com/tidwall/gjson"
	"github.com/valyala/fastjson"
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Feed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			node, err := jfeed.Parse(input)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			node.Release()
		}
	})

	b.Run("Fastjson", func(b *testing.B) {
		var p fastjson.Parser
		for i := 0; i < b.N; i++ {
			if _, err := p.ParseBytes(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("GJSON", func(b *testing.B) {
		// gjson defers most parsing work until values are fetched, so
		// validate first for a roughly comparable amount of work.
		for i := 0; i < b.N; i++ {
			if !gjson.ValidBytes(input) {
				b.Fatal("Unexpected invalid input")
			}
			gjson.ParseBytes(input)
		}
	})
}

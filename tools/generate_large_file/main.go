// Large YAML File Generator
//
// This tool generates a large YAML file together with its CST dump for
// performance testing and profiling of the loader and the transform.
//
// Usage:
//
//	go run main.go large.yaml            # writes large.yaml and large.yaml.cst.yaml
//	go run main.go large.yaml 20000000   # Specify target size in bytes
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/robinvdvleuten/yamlunist/cst"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
)

var (
	names = []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliett", "kilo", "lima",
	}

	tags = []string{
		"personal", "business", "vacation", "archived",
		"draft", "review", "pinned",
	}

	notes = []string{
		"Grocery shopping", "Fuel purchase", "Rent payment",
		"Monthly subscription", "Quarterly review", "Coffee",
		"Needs a second look", "Imported from backup",
	}

	comments = []string{
		"checked", "fixme", "imported", "see issue tracker", "stale",
	}
)

// generator writes YAML text and records the CST node for every piece it
// writes.
type generator struct {
	buf strings.Builder
}

func (g *generator) write(s string) cst.Range {
	start := g.buf.Len()
	g.buf.WriteString(s)
	return cst.Range{Start: start, End: g.buf.Len()}
}

func ptr(r cst.Range) *cst.Range { return &r }

func (g *generator) plain(s string) *cst.Node {
	return &cst.Node{Type: cst.Plain, ValueRange: ptr(g.write(s))}
}

func (g *generator) comment(s string) *cst.Node {
	return &cst.Node{Type: cst.Comment, Range: ptr(g.write("# " + s))}
}

// pair writes "key: value" and returns the key and the MAP_VALUE node.
func (g *generator) pair(key string, value func() *cst.Node) (*cst.Node, *cst.Node) {
	k := g.plain(key)
	colon := g.write(":")
	g.write(" ")
	v := value()
	return k, &cst.Node{
		Type:       cst.MapValue,
		ValueRange: &cst.Range{Start: colon.Start, End: v.ValueRange.End},
		Node:       v,
	}
}

func (g *generator) flowSeq(items []string) *cst.Node {
	open := g.write("[")
	entries := []cst.FlowItem{{Char: "[", Offset: open.Start}}
	for i, item := range items {
		if i > 0 {
			comma := g.write(",")
			entries = append(entries, cst.FlowItem{Char: ",", Offset: comma.Start})
			g.write(" ")
		}
		entries = append(entries, cst.FlowItem{Node: g.plain(item)})
	}
	shut := g.write("]")
	entries = append(entries, cst.FlowItem{Char: "]", Offset: shut.Start})
	return &cst.Node{
		Type:       cst.FlowSeq,
		ValueRange: &cst.Range{Start: open.Start, End: shut.End},
		Entries:    entries,
	}
}

func (g *generator) quoted(s string) *cst.Node {
	return &cst.Node{Type: cst.QuoteDouble, ValueRange: ptr(g.write(strconv.Quote(s)))}
}

// record writes one sequence entry:
//
//	- name: alpha-1 # checked
//	  count: 42
//	  tags: [draft, pinned]
//	  note: "Coffee"
func (g *generator) record(n int) *cst.Node {
	dash := g.write("- ")
	start := g.buf.Len()

	var items []*cst.Node
	field := func(key string, value func() *cst.Node, last bool) {
		k, v := g.pair(key, value)
		items = append(items, k, v)
		if rand.Intn(5) == 0 {
			g.write(" ")
			items = append(items, g.comment(comments[rand.Intn(len(comments))]))
		}
		if !last {
			g.write("\n  ")
		}
	}

	field("name", func() *cst.Node {
		return g.plain(fmt.Sprintf("%s-%d", names[rand.Intn(len(names))], n))
	}, false)
	field("count", func() *cst.Node { return g.plain(strconv.Itoa(rand.Intn(10000))) }, false)
	field("tags", func() *cst.Node {
		picked := make([]string, 1+rand.Intn(3))
		for i := range picked {
			picked[i] = tags[rand.Intn(len(tags))]
		}
		return g.flowSeq(picked)
	}, false)
	field("note", func() *cst.Node { return g.quoted(notes[rand.Intn(len(notes))]) }, true)

	end := g.buf.Len()
	g.write("\n")

	mapping := &cst.Node{Type: cst.Map, ValueRange: &cst.Range{Start: start, End: end}, Items: items}
	return &cst.Node{
		Type:       cst.SeqItem,
		ValueRange: &cst.Range{Start: dash.Start, End: end},
		Node:       mapping,
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: generate_large_file <out.yaml> [size]")
		os.Exit(2)
	}
	out := os.Args[1]

	targetSize := defaultTargetSize
	if len(os.Args) > 2 {
		if size, err := strconv.Atoi(os.Args[2]); err == nil {
			targetSize = size
		}
	}

	g := &generator{}
	header := g.comment("Generated by generate_large_file")
	g.write("\n")

	seqStart := g.buf.Len()
	var records []*cst.Node
	for g.buf.Len() < targetSize {
		records = append(records, g.record(len(records)+1))
	}

	seq := &cst.Node{
		Type:       cst.Seq,
		ValueRange: &cst.Range{Start: seqStart, End: max(seqStart, g.buf.Len()-1)},
		Items:      records,
	}
	doc := &cst.Node{
		Type:       cst.Document,
		ValueRange: &cst.Range{Start: 0, End: g.buf.Len()},
		Contents:   []*cst.Node{header, seq},
	}

	dump, err := cst.Encode(cst.Stream{doc})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, []byte(g.buf.String()), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(out+".cst.yaml", dump, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Generated %d bytes with %d records\n", g.buf.Len(), len(records))
}

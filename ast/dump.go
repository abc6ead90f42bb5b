package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/kestrel-engine/kestrel/ast/schema"
)

// DumpOptions controls Dump's output. The zero value dumps with schema
// names and inline payloads visible.
type DumpOptions struct {
	// NamesDisabled forces TAG_<n> rendering instead of schema names, for
	// comparing output against a build whose schema table has drifted.
	NamesDisabled bool
}

// Dump writes a recursive, indented text rendering of the node at cursor to
// w. It is diagnostic only: the dump format does not round-trip (§4.4).
func Dump(w io.Writer, buf []byte, cursor int, opts DumpOptions) error {
	r := NewReader(buf)
	d := &dumper{r: r, w: w, opts: opts}

	return d.node(cursor, 0)
}

type dumper struct {
	r    *Reader
	w    io.Writer
	opts DumpOptions
}

func (d *dumper) indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func (d *dumper) tagName(tag schema.Tag) string {
	if d.opts.NamesDisabled || !tag.Valid() {
		return fmt.Sprintf("TAG_%d", uint8(tag))
	}

	return tag.String()
}

// node dumps the node starting at cursor, walking it in the same order as
// SkipTree. It returns only an error; childNode finds the offset just past
// the node with SkipTree, so the two never disagree about node boundaries.
func (d *dumper) node(cursor int, depth int) error {
	tag, err := d.r.FetchTag(&cursor)
	if err != nil {
		return err
	}

	payloadStart := cursor

	e, err := schema.Lookup(tag)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(d.w, "%s%s", d.indent(depth), d.tagName(tag)); err != nil {
		return err
	}

	if e.HasInlineString {
		data, err := d.r.GetInlinedData(payloadStart, tag)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(d.w, " %q", data); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(d.w); err != nil {
		return err
	}

	child, err := d.r.MoveToChildren(payloadStart, tag)
	if err != nil {
		return err
	}
	cursor = child

	for i := 0; i < e.NumSubtrees; i++ {
		next, err := d.childNode(cursor, depth+1)
		if err != nil {
			return err
		}
		cursor = next
	}

	if e.NumSkips == 0 {
		return nil
	}

	end, err := d.r.GetSkip(payloadStart, tag, 0)
	if err != nil {
		return err
	}

	if cursor < end {
		if _, err := fmt.Fprintf(d.w, "%s/* ... */\n", d.indent(depth+1)); err != nil {
			return err
		}
	}

	for cursor < end {
		if label := d.skipLabelAt(payloadStart, tag, e, cursor); label != "" {
			if _, err := fmt.Fprintf(d.w, "%s/* %s -> */\n", d.indent(depth+1), label); err != nil {
				return err
			}
		}

		next, err := d.childNode(cursor, depth+1)
		if err != nil {
			return err
		}
		cursor = next
	}

	return nil
}

// childNode dumps the node at cursor and returns the offset just past it,
// without altering the caller's own cursor variable (Dump's recursive
// callers pass cursor by value, not by pointer, so the traversal stays a
// plain tree walk rather than needing Reader.SkipTree's pointer cursor).
func (d *dumper) childNode(cursor int, depth int) (int, error) {
	start := cursor
	if err := d.node(cursor, depth); err != nil {
		return 0, err
	}

	if err := d.r.SkipTree(&start); err != nil {
		return 0, err
	}

	return start, nil
}

// skipLabelAt reports the named skip, if any, whose absolute offset equals
// cursor, annotating the dump at exactly the points where a named boundary
// (iftrue/iffalse, catch/finally, ...) falls.
func (d *dumper) skipLabelAt(payloadStart int, tag schema.Tag, e schema.Entry, cursor int) string {
	for which, name := range e.SkipNames {
		if which == 0 {
			continue // slot 0 is always END, annotated implicitly by loop exit
		}

		off, err := d.r.GetSkip(payloadStart, tag, which)
		if err == nil && off == cursor {
			return name
		}
	}

	return ""
}

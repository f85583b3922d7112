// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/apex/log"
)

// schemaTag is a discovered json field used when emitting schema information
// (--schema flag).
type schemaTag struct {
	Name string
	Kind string
}

// maxSchemaDepth limits the depth of schema walking.
const maxSchemaDepth = 3

// DumpSchema writes the sorted field paths of the structured report, with
// their kinds, to w. If w is nil, os.Stdout is used.
func DumpSchema(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w, "Fields of the report emitted by --output=json and --output=yaml.")
	fmt.Fprintln(w, "")

	tags := dumpSchemaWalker("", reflect.TypeOf(Document{}), 0)
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	for _, tag := range tags {
		fmt.Fprintf(w, "%-24s %s\n", tag.Name, tag.Kind)
	}
}

// dumpSchemaWalker recursively walks a struct type discovering json tags.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []schemaTag {
	tags := make([]schemaTag, 0)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		tagValue, ok := field.Tag.Lookup("json")
		if !ok || tagValue == "-" {
			continue
		}

		name := strings.Split(tagValue, ",")[0]
		if holder != "" {
			name = holder + "." + name
		}

		ft := field.Type
		kind := ft.Kind().String()
		if ft.Kind() == reflect.Slice {
			kind = "[]" + ft.Elem().Kind().String()
			ft = ft.Elem()
			name += "[]"
		}

		log.Debugf("schema field: name=%s kind=%s", name, kind)
		tags = append(tags, schemaTag{Name: name, Kind: kind})

		if ft.Kind() == reflect.Struct && depth < maxSchemaDepth {
			tags = append(tags, dumpSchemaWalker(name, ft, depth+1)...)
		}
	}

	return tags
}

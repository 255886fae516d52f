package stac

import (
	"context"

	j "github.com/goccy/go-json"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/dsl"
)

// Link is a STAC link object.
// https://github.com/radiantearth/stac-spec/blob/v0.9.0/collection-spec/collection-spec.md#link-object
type Link struct {
	Href  string
	Rel   string
	Type  string
	Title string
	// Label extension, read from "label:assets".
	Label string
}

var linkObject = dsl.Object().
	Field("href", dsl.SchemaOf[string](dsl.String().NonEmpty())).Required().
	Field("rel", dsl.SchemaOf[string](dsl.String().NonEmpty())).Required().
	Field("type", dsl.SchemaOf[string](dsl.String())).
	Field("title", dsl.SchemaOf[string](dsl.String())).
	Field("label", dsl.SchemaOf[string](dsl.String())).AliasOnly("label:assets").
	Title("Link").
	UnknownStrip().
	MustBuild()

var linkSchema = dsl.Project(linkObject, func(_ context.Context, m map[string]any) (Link, error) {
	l := Link{Href: m["href"].(string), Rel: m["rel"].(string)}
	l.Type, _ = m["type"].(string)
	l.Title, _ = m["title"].(string)
	l.Label, _ = m["label"].(string)
	return l, nil
})

// LinkSchema validates a link object.
func LinkSchema() stacskema.Schema[Link] { return linkSchema }

// ParseLink requires href and rel as non-empty strings; type, title and
// label:assets are optional strings.
func ParseLink(ctx context.Context, v any) (Link, error) {
	return linkSchema.Parse(ctx, v)
}

// ToMap returns the wire representation. An empty optional string means
// absent, so an explicit "" in the input is not written back.
func (l Link) ToMap() map[string]any {
	m := map[string]any{"href": l.Href, "rel": l.Rel}
	putString(m, "type", l.Type)
	putString(m, "title", l.Title)
	putString(m, "label:assets", l.Label)
	return m
}

func (l Link) MarshalJSON() ([]byte, error) { return j.Marshal(l.ToMap()) }

// UnmarshalJSON validates data with LinkSchema.
func (l *Link) UnmarshalJSON(data []byte) error {
	v, err := stacskema.ParseFrom(context.Background(), linkSchema, stacskema.JSONBytes(data))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func putString(m map[string]any, k, v string) {
	if v != "" {
		m[k] = v
	}
}

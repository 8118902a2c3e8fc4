package types

// Kind identifies one of the three entity kinds in the parent chain.
// Dispatch on Kind is always an explicit switch, never shape inspection.
type Kind string

const (
	KindChannel Kind = "channel"
	KindSource  Kind = "source"
	KindSite    Kind = "site"
)

// Kinds lists all entity kinds in parent-before-child order.
var Kinds = []Kind{KindChannel, KindSource, KindSite}

// Entity is the capability shared by all stored records: once persisted,
// each carries an engine-assigned integer identity.
type Entity interface {
	// ID returns the persisted identity, or zero before the first insert.
	ID() int64

	// Kind returns the entity kind tag.
	Kind() Kind
}

// Compile-time interface checks.
var (
	_ Entity = (*Channel)(nil)
	_ Entity = (*Source)(nil)
	_ Entity = (*Site)(nil)
)

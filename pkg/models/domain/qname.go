package domain

import "strings"

// ISO4217Namespace is the namespace of monetary unit measures.
const ISO4217Namespace = "http://www.xbrl.org/2003/iso4217"

// QName is a namespace-qualified name resolved against a report's prefix
// table.
type QName struct {
	Prefix    string
	Namespace string
	LocalName string
}

func (q QName) String() string {
	if q.Prefix == "" {
		return q.LocalName
	}
	return q.Prefix + ":" + q.LocalName
}

// SplitQName splits a raw prefixed name into prefix and local part. Names
// without a prefix come back with an empty prefix.
func SplitQName(raw string) (prefix, local string) {
	if i := strings.Index(raw, ":"); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	return "", raw
}

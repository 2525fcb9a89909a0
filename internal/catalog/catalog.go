// Package catalog assembles extracted strings into a translation catalog
// and reconciles it with an existing one.
package catalog

import (
	"slices"
	"strings"
)

// Comments are the annotations attached to a message.
type Comments struct {
	Translator string
	Extracted  string
	Reference  string
	Flag       string
}

// Message is one catalog entry. Str holds the translated values, one per
// plural form.
type Message struct {
	Context  string
	ID       string
	Plural   string
	Str      []string
	Comments Comments
}

// References splits the reference comment into "file:line" items.
func (m *Message) References() []string {
	return strings.Fields(m.Comments.Reference)
}

// IsHeader reports whether m is the PO header entry.
func (m *Message) IsHeader() bool {
	return m.Context == "" && m.ID == ""
}

func (m *Message) Clone() *Message {
	c := *m
	c.Str = slices.Clone(m.Str)
	return &c
}

// Catalog maps a context and a msgid to a message.
type Catalog struct {
	contexts map[string]map[string]*Message
	count    int
}

func New() *Catalog {
	return &Catalog{contexts: make(map[string]map[string]*Message)}
}

// Get looks up a message by key.
func (c *Catalog) Get(context, id string) (*Message, bool) {
	m, ok := c.contexts[context][id]
	return m, ok
}

// Put stores m, replacing any message with the same key.
func (c *Catalog) Put(m *Message) {
	ids, ok := c.contexts[m.Context]
	if !ok {
		ids = make(map[string]*Message)
		c.contexts[m.Context] = ids
	}
	if _, exists := ids[m.ID]; !exists {
		c.count++
	}
	ids[m.ID] = m
}

func (c *Catalog) Len() int {
	return c.count
}

// Messages returns every message ordered by context and msgid.
func (c *Catalog) Messages() []*Message {
	msgs := make([]*Message, 0, c.count)
	for _, ids := range c.contexts {
		for _, m := range ids {
			msgs = append(msgs, m)
		}
	}
	slices.SortFunc(msgs, func(a, b *Message) int {
		if n := strings.Compare(a.Context, b.Context); n != 0 {
			return n
		}
		return strings.Compare(a.ID, b.ID)
	})
	return msgs
}

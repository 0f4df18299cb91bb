// Package subconv reads and writes Clash-style proxy subscriptions.
// Only two fields of a proxy entry matter here, a server and a name.
// Everything else, including fields this package knows nothing about,
// survives a round trip untouched.
package subconv

import (
	"bufio"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/Fatty911/nodes-subconverter/geolib"
)

type subscriptionEntry struct {
	nameNode *yaml.Node
	node     geolib.Node
}

// Subscription is a parsed proxy list. It keeps a complete YAML
// document so unknown proxy fields and entries are preserved on
// encoding.
type Subscription struct {
	document yaml.Node
	entries  []subscriptionEntry
}

// Nodes returns proxy entries which have both a server and a name, in
// the document order.
func (s *Subscription) Nodes() []geolib.Node {
	nodes := make([]geolib.Node, len(s.entries))

	for i, v := range s.entries {
		nodes[i] = v.node
	}

	return nodes
}

// Apply writes annotated display names back into the document. A given
// list has to match Nodes output in length and order.
func (s *Subscription) Apply(annotated []geolib.Node) error {
	if len(annotated) != len(s.entries) {
		return errors.Errorf("Expected %d nodes, got %d",
			len(s.entries), len(annotated))
	}

	for i, v := range s.entries {
		v.nameNode.SetString(annotated[i].Name)
	}

	return nil
}

func (s *Subscription) Encode(w io.Writer) error {
	if s.document.Kind == 0 {
		return nil
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(&s.document); err != nil {
		return errors.Annotate(err, "Cannot encode subscription")
	}

	return errors.Annotate(encoder.Close(), "Cannot finish encoding")
}

func Parse(r io.Reader) (*Subscription, error) {
	sub := &Subscription{}

	if err := yaml.NewDecoder(bufio.NewReader(r)).Decode(&sub.document); err != nil {
		if err == io.EOF {
			return sub, nil
		}

		return nil, errors.Annotate(err, "Cannot parse subscription")
	}

	root := &sub.document
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	proxies := mappingValue(root, "proxies")
	if proxies == nil || proxies.Kind != yaml.SequenceNode {
		return sub, nil
	}

	for i, entry := range proxies.Content {
		if entry.Kind != yaml.MappingNode {
			log.WithFields(log.Fields{
				"index": i,
			}).Debug("Skip a malformed proxy entry")

			continue
		}

		nameNode := mappingValue(entry, "name")
		serverNode := mappingValue(entry, "server")

		if nameNode == nil || serverNode == nil || serverNode.Value == "" {
			log.WithFields(log.Fields{
				"index": i,
			}).Debug("Skip a proxy entry without a server or a name")

			continue
		}

		sub.entries = append(sub.entries, subscriptionEntry{
			nameNode: nameNode,
			node: geolib.Node{
				Address: serverNode.Value,
				Name:    nameNode.Value,
			},
		})
	}

	return sub, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}

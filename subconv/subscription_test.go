package subconv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/Fatty911/nodes-subconverter/geolib"
)

const clashSubscription = `port: 7890
socks-port: 7891
mode: rule

proxies:
  - name: HK-node1
    type: ss
    server: 1.2.3.4
    port: 8388
    cipher: aes-128-gcm
    password: pass1
    udp: true
  - name: US-node2
    type: vmess
    server: example.com
    port: 443
    uuid: 00000000-0000-0000-0000-000000000000
`

func TestParseOK(t *testing.T) {
	sub, err := Parse(strings.NewReader(clashSubscription))
	assert.Nil(t, err)

	nodes := sub.Nodes()
	assert.Len(t, nodes, 2)
	assert.Equal(t, "1.2.3.4", nodes[0].Address)
	assert.Equal(t, "HK-node1", nodes[0].Name)
	assert.Equal(t, "example.com", nodes[1].Address)
	assert.Equal(t, "US-node2", nodes[1].Name)
}

func TestParseEmpty(t *testing.T) {
	sub, err := Parse(strings.NewReader(""))
	assert.Nil(t, err)
	assert.Len(t, sub.Nodes(), 0)

	buf := &bytes.Buffer{}
	assert.Nil(t, sub.Encode(buf))
	assert.Equal(t, "", buf.String())
}

func TestParseNoProxies(t *testing.T) {
	sub, err := Parse(strings.NewReader("port: 7890\nmode: rule\n"))
	assert.Nil(t, err)
	assert.Len(t, sub.Nodes(), 0)
}

func TestParseBrokenYAML(t *testing.T) {
	_, err := Parse(strings.NewReader("proxies: [\n"))
	assert.NotNil(t, err)
}

func TestParseSkipsMalformed(t *testing.T) {
	text := `proxies:
  - just-a-string
  - name: no-server-here
    type: ss
  - type: ss
    server: 5.6.7.8
  - name: ok-node
    server: 9.9.9.9
`

	sub, err := Parse(strings.NewReader(text))
	assert.Nil(t, err)

	nodes := sub.Nodes()
	assert.Len(t, nodes, 1)
	assert.Equal(t, "9.9.9.9", nodes[0].Address)
	assert.Equal(t, "ok-node", nodes[0].Name)

	buf := &bytes.Buffer{}
	assert.Nil(t, sub.Apply(nodes))
	assert.Nil(t, sub.Encode(buf))
	assert.Contains(t, buf.String(), "just-a-string")
	assert.Contains(t, buf.String(), "no-server-here")
	assert.Contains(t, buf.String(), "5.6.7.8")
}

func TestApplyCountMismatch(t *testing.T) {
	sub, err := Parse(strings.NewReader(clashSubscription))
	assert.Nil(t, err)

	assert.NotNil(t, sub.Apply([]geolib.Node{}))
	assert.NotNil(t, sub.Apply([]geolib.Node{{Address: "1.2.3.4", Name: "x"}}))
}

func TestRoundTrip(t *testing.T) {
	sub, err := Parse(strings.NewReader(clashSubscription))
	assert.Nil(t, err)

	nodes := sub.Nodes()
	nodes[0].Name = "Real:HK***-Nominal:HK-node1"
	nodes[1].Name = "[HTTP query failed]-US-node2"

	assert.Nil(t, sub.Apply(nodes))

	buf := &bytes.Buffer{}
	assert.Nil(t, sub.Encode(buf))

	decoded := struct {
		Port    int                      `yaml:"port"`
		Mode    string                   `yaml:"mode"`
		Proxies []map[string]interface{} `yaml:"proxies"`
	}{}

	assert.Nil(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 7890, decoded.Port)
	assert.Equal(t, "rule", decoded.Mode)
	assert.Len(t, decoded.Proxies, 2)

	assert.Equal(t, "Real:HK***-Nominal:HK-node1", decoded.Proxies[0]["name"])
	assert.Equal(t, "1.2.3.4", decoded.Proxies[0]["server"])
	assert.Equal(t, 8388, decoded.Proxies[0]["port"])
	assert.Equal(t, "aes-128-gcm", decoded.Proxies[0]["cipher"])
	assert.Equal(t, true, decoded.Proxies[0]["udp"])

	assert.Equal(t, "[HTTP query failed]-US-node2", decoded.Proxies[1]["name"])
	assert.Equal(t, "example.com", decoded.Proxies[1]["server"])
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", decoded.Proxies[1]["uuid"])
}

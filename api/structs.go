package api

import (
	"github.com/Fatty911/nodes-subconverter/geolib"
)

type nodeStruct struct {
	Name   string `json:"name"`
	Server string `json:"server"`
}

type annotateRequestStruct struct {
	Nodes []nodeStruct `json:"nodes"`
}

func (a *annotateRequestStruct) ToNodes() []geolib.Node {
	nodes := make([]geolib.Node, len(a.Nodes))

	for i, v := range a.Nodes {
		nodes[i] = geolib.Node{
			Address: v.Server,
			Name:    v.Name,
		}
	}

	return nodes
}

type annotateResponseStruct struct {
	Nodes []nodeStruct `json:"nodes"`
}

func newAnnotateResponse(nodes []geolib.Node) annotateResponseStruct {
	resp := annotateResponseStruct{
		Nodes: make([]nodeStruct, len(nodes)),
	}

	for i, v := range nodes {
		resp.Nodes[i] = nodeStruct{
			Name:   v.Name,
			Server: v.Address,
		}
	}

	return resp
}

type infoResponseStruct struct {
	Result infoResultStruct `json:"result"`
}

type infoResultStruct struct {
	Version      string             `json:"version"`
	Provider     string             `json:"provider"`
	RequestDelay string             `json:"request_delay"`
	PerMinute    int                `json:"per_minute"`
	TimeBudget   string             `json:"time_budget"`
	Stats        *geolib.UsageStats `json:"stats"`
}

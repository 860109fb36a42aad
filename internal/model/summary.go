package model

import (
	"fmt"
	"strings"
)

// Summary returns one line per layer with its parameter count.
//
//	#  layer              params
//	0  Dense(2 -> 8)      24
//	1  TanH               0
//	...
//	total params: 33
func (m *Sequential) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-3s%-22s%s\n", "#", "layer", "params")

	total := 0
	for i, layer := range m.layers {
		count := 0
		for _, p := range layer.Params() {
			count += layer.Param(p).Len()
		}
		total += count
		fmt.Fprintf(&sb, "%-3d%-22s%d\n", i, layer.Info(), count)
	}

	fmt.Fprintf(&sb, "total params: %d (%s)\n", total, m.state)
	return sb.String()
}

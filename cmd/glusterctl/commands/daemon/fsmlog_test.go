package daemon

import (
	"testing"

	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/stretchr/testify/assert"
)

func TestPeerOptions(t *testing.T) {
	opts := peerOptions([]gluster.Peer{
		{Hostname: "server2", State: "Peer in Cluster"},
		{Hostname: "server3"},
	})

	if assert.Len(t, opts, 2) {
		assert.Equal(t, "server2", opts[0].Value)
		assert.Equal(t, "Peer in Cluster", opts[0].Description)
		assert.Equal(t, "server3", opts[1].Label)
		assert.Equal(t, "unknown", opts[1].Description)
	}
}

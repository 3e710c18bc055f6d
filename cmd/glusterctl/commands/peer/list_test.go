package peer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/marmos91/glusterrpc/internal/protocol/gluster"
	"github.com/stretchr/testify/assert"
)

func TestPeerListRows(t *testing.T) {
	id := uuid.MustParse("2e9c1b7a-4f1e-4c55-9d1e-8c6a0f3b2a10")
	rows := newPeerList([]gluster.Peer{
		{Index: 1, Hostname: "server2", UUID: id, Connected: true, State: "Peer in Cluster"},
		{Index: 2, Hostname: "server3"},
	})

	assert.Equal(t, []string{"HOSTNAME", "UUID", "CONNECTED", "STATE"}, rows.Headers())
	assert.Equal(t, [][]string{
		{"server2", id.String(), "yes", "Peer in Cluster"},
		{"server3", "-", "no", "-"},
	}, rows.Rows())
}

func TestPeerListEmpty(t *testing.T) {
	rows := newPeerList(nil)
	assert.Empty(t, rows.Rows())
}

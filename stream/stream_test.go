package stream_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
	"github.com/katalvlaran/labyrinth/stream"
)

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/eller?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// pull requests batches of inner rows, then the closing row.
func pull(t *testing.T, conn *websocket.Conn, batches ...int) []stream.Frame {
	t.Helper()
	var frames []stream.Frame
	read := func() stream.Frame {
		var f stream.Frame
		require.NoError(t, conn.ReadJSON(&f))
		require.Empty(t, f.Error)
		return f
	}
	for _, n := range batches {
		require.NoError(t, conn.WriteJSON(stream.Request{Rows: n}))
		for range n {
			frames = append(frames, read())
		}
	}
	require.NoError(t, conn.WriteJSON(stream.Request{Finish: true}))
	frames = append(frames, read())
	return frames
}

func TestStream_PerfectMaze(t *testing.T) {
	srv := httptest.NewServer(stream.NewServer(nil).Mux())
	defer srv.Close()

	const width = 6
	frames := pull(t, dial(t, srv, "width=6&seed=3"), 3, 2)
	require.Len(t, frames, 6)
	for y, f := range frames {
		assert.Equal(t, y, f.Y)
		assert.Len(t, f.East, width)
	}
	assert.True(t, frames[5].Last)

	strip, err := space.NewStrip(width)
	require.NoError(t, err)
	box, err := space.NewBox(width, len(frames))
	require.NoError(t, err)
	m, err := maze.New[space.Point](box, nil)
	require.NoError(t, err)
	for _, f := range frames {
		passages, err := f.Row().Passages(strip)
		require.NoError(t, err)
		for _, p := range passages {
			require.NoError(t, m.Connect(p[0], p[1]))
		}
	}
	assert.True(t, maze.IsPerfect(m))
}

func TestStream_SeedReproducible(t *testing.T) {
	srv := httptest.NewServer(stream.NewServer(nil).Mux())
	defer srv.Close()

	a := pull(t, dial(t, srv, "width=9&seed=11"), 4)
	b := pull(t, dial(t, srv, "width=9&seed=11"), 1, 3)
	assert.Equal(t, a, b)
}

func TestStream_BadRequests(t *testing.T) {
	srv := httptest.NewServer(stream.NewServer(nil).Mux())
	defer srv.Close()

	for _, q := range []string{"", "width=0", "width=5000", "width=4&seed=x"} {
		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/eller?" + q
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		require.Error(t, err, q)
		require.NotNil(t, resp, q)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}

	conn := dial(t, srv, "width=4")
	require.NoError(t, conn.WriteJSON(stream.Request{Rows: stream.MaxBatch + 1}))
	var f stream.Frame
	require.NoError(t, conn.ReadJSON(&f))
	assert.Contains(t, f.Error, "rows must be")
}

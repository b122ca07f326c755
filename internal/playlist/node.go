package playlist

import "github.com/hazadus/go-tracklist/internal/track"

// node звено цепочки: хранит трек и ссылку на следующее звено (nil у хвоста)
type node struct {
	track track.Track
	next  *node
}

func newNode(t track.Track, next *node) *node {
	return &node{track: t, next: next}
}

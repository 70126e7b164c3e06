package core

// Client is one connected chat participant as seen by the core layer. It is
// owned by its session; the hub holds a reference only between Register and
// Unregister.
type Client struct {
	ID     string
	Name   string
	Remote string // remote endpoint, used for logging only
	Out    chan string
}

// NewClient constructs a client with a buffered outbound channel.
func NewClient(id, name, remote string) *Client {
	if name == "" {
		name = id
	}
	return &Client{
		ID:     id,
		Name:   name,
		Remote: remote,
		Out:    make(chan string, 16),
	}
}

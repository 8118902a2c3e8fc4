package types

// Channel is a root entity: a distribution destination with its own posting
// schedule and word filter. Name and URL are unique across channels.
type Channel struct {
	ChannelID      int64    `json:"id"`
	Name           string   `json:"name"`
	URL            string   `json:"url"`
	PostTimes      []string `json:"post_times"`
	ForbiddenWords []string `json:"forbidden_words"`
}

// ID returns the persisted channel id.
func (c *Channel) ID() int64 { return c.ChannelID }

// Kind returns KindChannel.
func (c *Channel) Kind() Kind { return KindChannel }

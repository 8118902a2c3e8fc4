package types

// Source is a scrape target owned by exactly one Channel.
type Source struct {
	SourceID       int64    `json:"id"`
	ChannelID      int64    `json:"channel_id"`
	SourceURL      string   `json:"source_url"`
	ParseMedia     bool     `json:"parse_media"`
	ForbiddenWords []string `json:"forbidden_words"`
}

// ID returns the persisted source id.
func (s *Source) ID() int64 { return s.SourceID }

// Kind returns KindSource.
func (s *Source) Kind() Kind { return KindSource }

// EffectiveForbiddenWords returns the word filter a worker should apply when
// scraping s: the union of the owning channel's words and the source's own.
// Channel words come first, duplicates are dropped. Storage keeps the two
// fields separate; merging happens only here.
func EffectiveForbiddenWords(c *Channel, s *Source) []string {
	seen := make(map[string]bool)
	merged := []string{}
	for _, list := range [][]string{c.ForbiddenWords, s.ForbiddenWords} {
		for _, w := range list {
			if !seen[w] {
				seen[w] = true
				merged = append(merged, w)
			}
		}
	}
	return merged
}

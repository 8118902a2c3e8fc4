package sqlite

// Schema DDL. CREATE TABLE IF NOT EXISTS keeps startup idempotent; the
// cascade wiring lives in the child tables' FOREIGN KEY clauses.
const (
	createChannels = `CREATE TABLE IF NOT EXISTS channels (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE NOT NULL,
    url TEXT UNIQUE NOT NULL,
    post_times TEXT,
    forbidden_words TEXT
);`

	createSources = `CREATE TABLE IF NOT EXISTS sources (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    channel_id INTEGER NOT NULL,
    source_url TEXT NOT NULL,
    parse_media INTEGER NOT NULL,
    forbidden_words TEXT,
    FOREIGN KEY (channel_id) REFERENCES channels(id) ON DELETE CASCADE
);`

	// parent_id references sources(id): a site's parent is a source.
	createSites = `CREATE TABLE IF NOT EXISTS sites (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    parent_id INTEGER NOT NULL,
    site_url TEXT NOT NULL,
    site_type TEXT CHECK(site_type IN ('AUTO','RENT','BUY','FREE')) NOT NULL,
    FOREIGN KEY (parent_id) REFERENCES sources(id) ON DELETE CASCADE
);`
)

// schemaDDL lists CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createChannels,
	createSources,
	createSites,
}

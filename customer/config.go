package customer

// Config holds the table names the repository operates on.
// Table names are passed in explicitly rather than read from the process
// environment, so tests can point a repository at fakes or local tables.
type Config struct {
	// CustomerTable is the name of the customer table.
	// Default: "customer"
	CustomerTable string

	// CommonTable is the name of the shared table holding email lookup
	// records.
	// Default: "common"
	CommonTable string
}

// DefaultConfig returns the conventional table names.
func DefaultConfig() Config {
	return Config{
		CustomerTable: "customer",
		CommonTable:   "common",
	}
}

// validate fills empty fields with defaults.
func (c *Config) validate() {
	if c.CustomerTable == "" {
		c.CustomerTable = "customer"
	}
	if c.CommonTable == "" {
		c.CommonTable = "common"
	}
}

package cfg

type Cfg struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Application configuration
	Port                string
	FetchTimeout        int // seconds
	SubscriptionTimeout int // seconds, upper bound for one create call

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}

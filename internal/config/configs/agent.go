package configs

// Agent holds the fixed settings the campaign builder applies on every run.
type Agent struct {
	// WorkDir is where generated images are written. Empty means the OS
	// temporary directory.
	WorkDir string `env:"WORK_DIR"`

	ContentExclusion string `env:"CONTENT_EXCLUSION" envDefault:"PARKED_DOMAIN"`
	TargetCPAMicros  int64  `env:"TARGET_CPA_MICROS" envDefault:"50000000"`
	AdGroupName      string `env:"AD_GROUP_NAME" envDefault:"Test Ad Group"`
	CallToAction     string `env:"CALL_TO_ACTION" envDefault:"Learn More"`
	LongHeadline     string `env:"LONG_HEADLINE" envDefault:"Transform with AI Tech"`

	// AudienceExclusions inserts the audience targeting step between
	// location and scheduling.
	AudienceExclusions bool `env:"AUDIENCE_EXCLUSIONS" envDefault:"false"`
}

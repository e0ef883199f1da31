package cli

var (
	PrintTimelineForTest = printTimeline
	LoadDotEnvForTest    = loadDotEnv
)

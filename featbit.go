package docfinder

// The page returned when no category or platform is detected. Deliberately
// a fixed constant rather than a catalog entry, so it does not appear in
// AllPageURLs.
const defaultGettingStartedURL = "https://docs.featbit.co/docs/getting-started"

var featbitCatalog = mustCatalog(NewCatalog(featbitConfig()))

// FeatBitCatalog returns the catalog of official FeatBit documentation
// pages. SDK pages live on GitHub; everything else is on docs.featbit.co.
// The catalog validates at package initialization, so malformed data fails
// the process before any query runs.
func FeatBitCatalog() *Catalog {
	return featbitCatalog
}

func mustCatalog(c *Catalog, err error) *Catalog {
	if err != nil {
		panic(err)
	}
	return c
}

func featbitConfig() CatalogConfig {
	return CatalogConfig{
		Pages: map[string]map[string]string{
			// SDK integration. Subtopic keys double as platform tags where
			// a platform-specific page exists; dotnet is split into
			// server/client repositories and therefore has no "dotnet" key.
			"sdk": {
				"overview":      "https://docs.featbit.co/sdk/overview",
				"javascript":    "https://github.com/featbit/featbit-js-client-sdk",
				"react":         "https://github.com/featbit/featbit-react-client-sdk",
				"react-native":  "https://github.com/featbit/featbit-react-native-sdk",
				"node":          "https://github.com/featbit/featbit-node-server-sdk",
				"dotnet-server": "https://github.com/featbit/featbit-dotnet-sdk",
				"dotnet-client": "https://github.com/featbit/featbit-dotnet-client-sdk",
				"java":          "https://github.com/featbit/featbit-java-sdk",
				"python":        "https://github.com/featbit/featbit-python-sdk",
				"go":            "https://github.com/featbit/featbit-go-sdk",
			},
			// Deployment and installation. The kubernetes/helm and
			// aws/terraform pairs share a URL on purpose.
			"deployment": {
				"overview":   "https://docs.featbit.co/installation/deployment-options",
				"docker":     "https://docs.featbit.co/installation/docker-compose",
				"kubernetes": "https://github.com/featbit/featbit-charts",
				"helm":       "https://github.com/featbit/featbit-charts",
				"azure":      "https://github.com/featbit/azure-container-apps",
				"aws":        "https://docs.featbit.co/installation/terraform-aws",
				"terraform":  "https://docs.featbit.co/installation/terraform-aws",
				"own-infra":  "https://docs.featbit.co/installation/use-your-own-infrastructure",
			},
			// Feature management.
			"features": {
				"overview":   "https://docs.featbit.co/feature-flags/the-flag-list",
				"creating":   "https://docs.featbit.co/getting-started/create-two-feature-flags",
				"targeting":  "https://docs.featbit.co/feature-flags/targeting-users-with-flags/targeting-rules",
				"rollouts":   "https://docs.featbit.co/feature-flags/targeting-users-with-flags/percentage-rollouts",
				"ab-testing": "https://docs.featbit.co/getting-started/how-to-guides/ab-testing",
				"variations": "https://docs.featbit.co/feature-flags/create-flag-variations",
			},
			// Configuration management. No "overview" entry: config
			// questions without a platform page fall through to the
			// fallback page.
			"config": {
				"environment": "https://docs.featbit.co/feature-flags/organizing-flags/environments",
				"sdk-key":     "https://docs.featbit.co/getting-started/connect-an-sdk",
				"webhook":     "https://docs.featbit.co/integrations/webhooks",
				"segment":     "https://docs.featbit.co/feature-flags/users-and-user-segments/user-segments",
			},
			// Concepts.
			"concepts": {
				"overview":        "https://docs.featbit.co/",
				"getting-started": "https://docs.featbit.co/getting-started/connect-an-sdk",
			},
		},
		// Only the platform subset and the four category tags drive
		// detection today; the remaining tags mirror subtopics and are kept
		// for a future multi-match extension.
		Lexicon: map[string][]string{
			"sdk":        {"sdk", "client", "server", "integration", "initialize", "initialization"},
			"dotnet":     {"dotnet", ".net", "c#", "csharp"},
			"javascript": {"javascript", "js", "typescript", "ts"},
			"react":      {"react", "reactjs"},
			"node":       {"node", "nodejs", "node.js"},
			"python":     {"python", "py"},
			"go":         {"go", "golang"},
			"java":       {"java", "kotlin", "spring"},

			"deployment": {"deployment", "deploy", "install", "installation", "setup"},
			"docker":     {"docker", "container"},
			"kubernetes": {"kubernetes", "k8s", "k8"},
			"helm":       {"helm"},
			"azure":      {"azure", "microsoft cloud"},
			"aws":        {"aws", "amazon"},

			"feature":   {"feature flag", "feature toggle", "toggle", "flag", "feature"},
			"targeting": {"targeting", "rule", "rules"},
			"rollout":   {"rollout", "gradual", "publish"},
			"ab-test":   {"ab test", "a/b", "experiment"},

			"config":      {"configuration", "config", "setting", "settings"},
			"environment": {"environment", "env"},
			"sdk-key":     {"sdk key", "secret", "key"},
			"webhook":     {"webhook", "callback"},
		},
		Platforms: []string{"dotnet", "javascript", "react", "node", "python", "go", "java"},
		Rules: []CategoryRule{
			{Category: "deployment", Tag: "deployment"},
			{Category: "features", Tag: "feature"},
			{Category: "config", Tag: "config"},
			{Category: "sdk", Tag: "sdk"},
		},
		Fallback: PageMatch{
			URL:      defaultGettingStartedURL,
			Category: "concepts",
			Reason:   "Default overview page",
		},
	}
}

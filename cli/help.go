package cli

import "github.com/MakeNowJust/heredoc"

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		Every configuration key can be set from the environment. Keys are
		upper-cased, prefixed with TYPEAHEAD_ and nested keys are joined
		with an underscore.

		TYPEAHEAD_LOG_LEVEL: debug, info, warn or error.

		TYPEAHEAD_SERVICE_HOST, TYPEAHEAD_SERVICE_PORT: address of the HTTP server.

		TYPEAHEAD_SERVICE_MAX_LIMIT: largest limit a caller may request.

		TYPEAHEAD_DB_DRIVER: pgx or sqlite.

		TYPEAHEAD_ELASTICSEARCH_BROKERS: comma separated Elasticsearch addresses.

		TYPEAHEAD_MONGODB_URI, TYPEAHEAD_MONGODB_DATABASE: document store.

		TYPEAHEAD_BLEVE_DIR: directory holding the embedded indices.

		TYPEAHEAD_FULLTEXT_ENGINE: elasticsearch or bleve.

		Collections and endpoints can only be declared in the config file.
	`),
}

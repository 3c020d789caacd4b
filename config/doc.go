/*
Package config loads the resolver tooling configuration from .env files and
the process environment.

	cfg, err := config.Load(".env")

Recognised variables: KLV_LOG_LEVEL, KLV_LOG_FORMAT, KLV_LOG_OUTPUT
(comma-separated), KLV_LOG_DEVELOPMENT, KLV_LOG_ROTATE, KLV_DICTIONARY
(comma-separated YAML paths), KLV_DICTIONARY_NAME, AWS_ACCESS_KEY,
AWS_SECRET_KEY, AWS_REGION and AWS_DDB_TABLE.
*/
package config

/*
Package config loads settings for the polls library.

Sources, lowest precedence first:

  - defaults
  - .env file in the working directory (optional)
  - environment variables
  - command-line flags

Settings:

  - DATABASE_URL (-d): connection string, required
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - POLLS_APP_LABEL (-app): table prefix, default "polls"
  - POLLS_INDEX_LIMIT (-limit): index page size, default 5; 0 shows all
*/
package config

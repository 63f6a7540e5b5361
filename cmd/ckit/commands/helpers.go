package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/convertkit-go/convertkit/internal/constants"
	"github.com/convertkit-go/convertkit/pkg/ckclient"
	"github.com/convertkit-go/convertkit/pkg/convertkit"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrFormIDOrNameRequired = errors.New("a form id or name is required (use --id or --name)")
	ErrTagIDOrNameRequired  = errors.New("a tag id or name is required (use --id or --name)")
	ErrTagNotFound          = errors.New("tag not found")
)

// credentialsFile is the on-disk shape accepted by --credentials.
type credentialsFile struct {
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

// loadCredentials reads api_key and api_secret from a YAML credentials file.
func loadCredentials(path string) (*credentialsFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", constants.ErrCredentialsNotFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	var creds credentialsFile
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing credentials file %s: %w", path, err)
	}

	return &creds, nil
}

// CreateClient builds a ConvertKit client from the effective configuration.
// A --credentials file takes precedence over flags, environment variables
// and the config file.
func CreateClient() (convertkit.Client, error) {
	apiKey := viper.GetString("api_key")
	apiSecret := viper.GetString("api_secret")

	if path := viper.GetString("credentials"); path != "" {
		creds, err := loadCredentials(path)
		if err != nil {
			return nil, err
		}

		if creds.APIKey != "" {
			apiKey = creds.APIKey
		}

		if creds.APISecret != "" {
			apiSecret = creds.APISecret
		}
	}

	if apiKey == "" {
		return nil, constants.ErrNoCredentials
	}

	config := &convertkit.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   viper.GetString("base_url"),
		Debug:     viper.GetBool("debug"),
	}

	if viper.GetBool("verbose") || config.Debug {
		config.Logger = &stderrLogger{debug: config.Debug}
	}

	return ckclient.New(config)
}

// stderrLogger writes log lines to stderr so command output stays clean.
type stderrLogger struct {
	debug bool
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	if l.debug {
		l.write("DEBUG", msg, fields)
	}
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.write("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.write("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.write("ERROR", msg, fields)
}

func (l *stderrLogger) write(level, msg string, fields map[string]interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		_, _ = fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	_, _ = fmt.Fprintln(os.Stderr)
}

// rawable is satisfied by every entity type.
type rawable interface {
	Raw() map[string]interface{}
}

// encodeEntity writes a single entity as indented JSON or YAML.
func encodeEntity(entity rawable) error {
	return encodeValue(entity.Raw())
}

// encodeEntities writes a list of entities as indented JSON or YAML.
func encodeEntities[T rawable](entities []T) error {
	raw := make([]map[string]interface{}, 0, len(entities))
	for _, entity := range entities {
		raw = append(raw, entity.Raw())
	}

	return encodeValue(raw)
}

func encodeValue(value interface{}) error {
	switch viper.GetString("output") {
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encoding to YAML: %w", err)
		}

		return nil
	default:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encoding to JSON: %w", err)
		}

		return nil
	}
}

// parseID reports whether the argument is a numeric entity id.
func parseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// entityStr reads a string attribute, falling back to NotAvailable.
func entityStr(entity interface {
	Str(key string) (string, error)
}, key string,
) string {
	value, err := entity.Str(key)
	if err != nil {
		return NotAvailable
	}

	return value
}

// entityID reads the id attribute, falling back to NotAvailable.
func entityID(entity interface {
	ID() (int64, error)
},
) string {
	id, err := entity.ID()
	if err != nil {
		return NotAvailable
	}

	return strconv.FormatInt(id, 10)
}

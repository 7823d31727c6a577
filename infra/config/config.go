package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/rs/zerolog/log"
)

const path = "infra/config"

// Load loads the config for the given key.
// A missing file is not an error, the caller keeps its defaults.
func Load(key string, v interface{}) (bool, error) {

	f := fmt.Sprintf("%s/%s.json", path, key)

	b, err := ioutil.ReadFile(f)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not load config for %s: %w", key, err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Info().Str("config", key).Msg("loaded config overrides")

	return true, nil
}

package output

import (
	"github.com/sonemaro/hashfinder/pkg/logger"
	"gopkg.in/yaml.v3"
)

func (f *formatter) formatYAML(report *Report) (string, error) {
	f.log.Debug("Formatting YAML output")

	// Reuse the JSON structure for YAML output
	output := f.buildOutput(report)

	bytes, err := yaml.Marshal(output)
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML")
		return "", err
	}

	return string(bytes), nil
}

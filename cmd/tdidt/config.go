package main

import (
	"fmt"
	"strings"

	"github.com/pbanos/tdidt/dataset"
)

const envPrefix = "TDIDT"

func (rcc *rootCmdConfig) load() error {
	rcc.v.SetEnvPrefix(envPrefix)
	rcc.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	rcc.v.AutomaticEnv()
	if rcc.configFile == "" {
		return nil
	}
	rcc.v.SetConfigFile(rcc.configFile)
	rcc.v.SetConfigType("yaml")
	if err := rcc.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %v", rcc.configFile, err)
	}
	return nil
}

/*
labels returns the labels set through flags, environment (TDIDT_LABELS_POSITIVE,
...) or config file, with the unset ones taken from the given fallback.
*/
func (rcc *rootCmdConfig) labels(fallback dataset.Labels) (dataset.Labels, error) {
	l := dataset.Labels{
		Positive: rcc.v.GetString("labels.positive"),
		Negative: rcc.v.GetString("labels.negative"),
		True:     rcc.v.GetString("labels.true"),
	}.Merge(fallback)
	if err := l.Validate(); err != nil {
		return l, err
	}
	return l, nil
}

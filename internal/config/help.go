package config

import (
	"errors"
	"strings"
)

const banner = "Lambdaport is a backporting tool for classes which use lambda expressions\n" +
	"and have been compiled for the latest platform release, so that they can\n" +
	"run on the older releases named in the bytecode version table.\n" +
	"\n" +
	"This software is released under the Apache License 2.0.\n" +
	"The license text is at http://www.apache.org/licenses/LICENSE-2.0\n"

// Help assembles the usage text: a usage line with every required key as a
// -D<key>=? placeholder, the product banner, then the required and optional
// help blocks in catalog registration order. A catalog with no required
// keys or an empty help list is a programming error in catalog construction
// and is reported as an error rather than rendered partially.
func (r *Resolver) Help() (string, error) {
	requiredKeys := r.cat.RequiredKeys()
	requiredHelp := r.cat.RequiredHelp()
	optionalHelp := r.cat.OptionalHelp()
	switch {
	case len(requiredKeys) == 0:
		return "", errors.New("help: catalog declares no required parameters")
	case len(requiredHelp) == 0:
		return "", errors.New("help: catalog has an empty required-help list")
	case len(optionalHelp) == 0:
		return "", errors.New("help: catalog has an empty optional-help list")
	}

	options := make([]string, len(requiredKeys))
	for i, key := range requiredKeys {
		options[i] = "-D" + key + "=?"
	}

	var sb strings.Builder
	sb.WriteString("Usage: java ")
	sb.WriteString(strings.Join(options, " "))
	sb.WriteString(" -javaagent:lambdaport.jar -jar lambdaport.jar\n")
	sb.WriteString("\n")
	sb.WriteString(banner)
	sb.WriteString("\n")
	sb.WriteString("Required system properties:\n")
	sb.WriteString("\n")
	sb.WriteString(strings.Join(requiredHelp, "\n"))
	sb.WriteString("\n")
	sb.WriteString("Optional system properties:\n")
	sb.WriteString("\n")
	sb.WriteString(strings.Join(optionalHelp, "\n"))
	return sb.String(), nil
}

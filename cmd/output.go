package cmd

import (
	"encoding/json"
	"fmt"
	"graphdb/api/router/handlers"
	"graphdb/config"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"
)

// cliBaseURI is the base used for links printed by the CLI.
func cliBaseURI() string {
	if config.AppConfig.Server.BaseURI != "" {
		return config.AppConfig.Server.BaseURI
	}
	return "http://localhost:" + config.AppConfig.Server.Port + handlers.DataPath
}

// parseID parses a non-negative id argument.
func parseID(what, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

func printProperties(out io.Writer, props map[string]any) {
	if len(props) == 0 {
		fmt.Fprintln(out, "Properties: (none)")
		return
	}
	fmt.Fprintln(out, "Properties:")
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	writer := new(tabwriter.Writer)
	writer.Init(out, 4, 8, 1, '\t', 0)
	fmt.Fprintln(writer, "    KEY\tVALUE")
	fmt.Fprintln(writer, "    ---\t-----")
	for _, k := range keys {
		v, err := json.Marshal(props[k])
		if err != nil {
			v = []byte(fmt.Sprint(props[k]))
		}
		fmt.Fprintf(writer, "    %s\t%s\n", k, v)
	}
	writer.Flush()
}

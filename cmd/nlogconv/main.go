// Command nlogconv converts plain text, Windows Event XML and WCF trace
// logs into pipe-delimited lines for NLog-style log viewers.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

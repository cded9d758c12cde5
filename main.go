// SPDX-License-Identifier: MPL-2.0

package main

import cmd "tiwut-cli/cmd/tiwut"

func main() {
	cmd.Execute()
}

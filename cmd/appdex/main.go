// SPDX-License-Identifier: MPL-2.0

// Command appdex searches installed desktop applications and prints launcher
// payloads for the matches.
package main

func main() {
	Execute()
}

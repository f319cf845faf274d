package split

// Args splits a command line into its arguments.
// Arguments are separated by spaces and quoted arguments are unwrapped.
//
// Example:
//
//	split.Args(`xterm -e "vi /some/path"`) // ["xterm" "-e" "vi /some/path"]
func Args(cmdline string) []string {
	tok := Whitespace(cmdline).UnwrapQuotes(true)
	return tok.Collect()
}

// Split splits text on delimiter, keeping quoted tokens together with their
// quotes.
//
// Example:
//
//	split.Split(`a,"b,c",d`, ',') // ["a" `"b,c"` "d"]
func Split(text string, delimiter rune) []string {
	tok := OnChar(text, delimiter)
	return tok.Collect()
}

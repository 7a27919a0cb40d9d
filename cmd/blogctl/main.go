package main

import "github.com/UkralStul/blog-mvc/cmd/blogctl/commands"

func main() {
	commands.Execute()
}

package main

import (
	"github.com/biosecret/go-taskapi/app"
	_ "github.com/biosecret/go-taskapi/docs"
)

func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}

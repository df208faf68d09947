package main

import (
	"os"

	"github.com/ava12/sequitur/grammar"
)

func buildEngine(fileName string) (*grammar.Engine[byte], error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	e := grammar.New[byte]()
	e.Extend(data)
	return e, nil
}

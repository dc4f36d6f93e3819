package main

import (
	"github.com/ocidocs-dev/ocidocs-go/pkg/serverless"
)

func main() {
	serverless.LambdaMain()
}

// spritzroll prints N unbiased uniform draws from a Spritz keystream,
// exercising spritz.RandomUniform end to end the way demo/Herradura.go
// exercises the HerraduraKEx primitive end to end.
package main

import (
	"flag"
	"fmt"

	"blitter.com/go/spritz"
)

func main() {
	var key string
	var upper int
	var count int

	flag.StringVar(&key, "k", "rolling", "key to seed the generator")
	flag.IntVar(&upper, "u", 6, "roll range is [0, u)")
	flag.IntVar(&count, "n", 10, "number of draws")
	flag.Parse()

	var ctx spritz.Ctx
	spritz.Setup(&ctx, []byte(key))

	for i := 0; i < count; i++ {
		fmt.Println(spritz.RandomUniform(&ctx, uint32(upper)))
	}
}

// spritzsum computes a Spritz digest of stdin (or named files),
// mirroring coruus-go-sha3's shake256sum and blitter.com/go/xs's
// demo/hkexpasswd flag/log.Fatal conventions.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"blitter.com/go/spritz"
)

func sumReader(r io.Reader, n int) (string, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return "", err
	}
	out := make([]byte, n)
	spritz.Hash(out, data)
	return hex.EncodeToString(out), nil
}

func main() {
	var digestLen int
	flag.IntVar(&digestLen, "n", 32, "digest length in bytes (<= 255)")
	flag.Parse()

	if flag.NArg() == 0 {
		sum, err := sumReader(os.Stdin, digestLen)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(sum)
		return
	}

	for _, fname := range flag.Args() {
		f, err := os.Open(fname)
		if err != nil {
			log.Fatal(err)
		}
		sum, err := sumReader(f, digestLen)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s  %s\n", sum, fname)
	}
}

package main

import (
	"fmt"
	"github.com/gostonefire/chainhashmap"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chainhashmap-demo: %s\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	conf := chainhashmap.ConfFromEnv()
	hashMap, err := chainhashmap.NewStringTable[int](conf)
	if err != nil {
		return
	}

	days := []string{"Poniedziałek", "Wtorek", "Środa", "Czwartek", "Piątek", "Sobota", "Niedziela"}
	for i, day := range days {
		if err = hashMap.Insert(day, i+1); err != nil {
			return
		}
	}

	value, found, err := hashMap.Lookup("Piątek")
	if err != nil {
		return
	}
	if found {
		fmt.Println(*value)
	}

	if _, err = hashMap.Remove("Piątek"); err != nil {
		return
	}
	found, err = hashMap.Contains("Piątek")
	if err != nil {
		return
	}
	if found {
		fmt.Println("removal failed")
	} else {
		fmt.Println("removed successfully")
	}

	fmt.Println(hashMap.Dump())

	stat := hashMap.Stat(false)
	conf.Logger.Info("hash map stat",
		"records", stat.Records,
		"buckets", stat.NumberOfBuckets,
		"longest_chain", stat.LongestChain,
		"rehashes", stat.Rehashes,
	)

	return
}

// Command download-nounlist fetches a published noun-list page, finds the
// plain-text list it links to, and saves the words locally as input for
// filter-words.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/OrbitCoCo/DuoTang/internal/wordlist"
)

func main() {
	var (
		pageURL = flag.String("url", "https://www.desiquintans.com/nounlist", "page linking to the noun list")
		outPath = flag.String("out", "nouns_source.txt", "output path for the downloaded list")
	)
	flag.Parse()

	log.Printf("Fetching %s...", *pageURL)
	listURL, err := findListLink(*pageURL)
	if err != nil {
		log.Fatalf("Failed to locate word list link: %v", err)
	}
	log.Printf("Found word list at %s", listURL)

	words, err := fetchList(listURL)
	if err != nil {
		log.Fatalf("Failed to download word list: %v", err)
	}
	log.Printf("Downloaded %d words", len(words))

	if err := wordlist.WriteText(*outPath, words); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	log.Printf("Saved word list to %s", *outPath)
}

// findListLink parses the page and returns the first anchor pointing at a
// .txt file, resolved against the page URL.
func findListLink(pageURL string) (string, error) {
	resp, err := http.Get(pageURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}

	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && strings.HasSuffix(attr.Val, ".txt") {
					if ref, err := url.Parse(attr.Val); err == nil {
						found = base.ResolveReference(ref).String()
					}
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if found == "" {
		return "", fmt.Errorf("no .txt link on %s", pageURL)
	}
	return found, nil
}

func fetchList(listURL string) ([]string, error) {
	resp, err := http.Get(listURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var words []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, strings.ToLower(w))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

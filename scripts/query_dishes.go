package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

func main() {
	_ = godotenv.Load()

	defaultURL := os.Getenv("MEALS_SERVICE_URL")
	if defaultURL == "" {
		defaultURL = "http://127.0.0.1:8000"
	}
	baseURL := flag.String("url", defaultURL, "Meals service base URL")
	input := flag.String("in", "query.txt", "File with one food name per line")
	output := flag.String("out", "response.txt", "File the nutrition summary is written to")
	flag.Parse()

	names, err := readNames(*input)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *input, err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	var lines []string
	for _, name := range names {
		if err := createDish(client, *baseURL, name); err != nil {
			log.WithError(err).WithField("dish_name", name).Warn("Dish was not created")
		}
		summary, err := describeDish(client, *baseURL, name)
		if err != nil {
			log.WithError(err).WithField("dish_name", name).Error("Failed to fetch dish")
			continue
		}
		lines = append(lines, summary)
	}

	if err := os.WriteFile(*output, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	fmt.Printf("Wrote %d dishes to %s\n", len(lines), *output)
}

// readNames returns the non-empty trimmed lines of path
func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	return names, scanner.Err()
}

// createDish posts name to the service. A duplicate name is not an error here.
func createDish(client *http.Client, baseURL, name string) error {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return err
	}
	resp, err := client.Post(baseURL+"/dishes", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	payload, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusCreated || strings.TrimSpace(string(payload)) == "-2" {
		return nil
	}
	return fmt.Errorf("status %d, body %s", resp.StatusCode, payload)
}

// describeDish fetches name and formats its calories, sodium and sugar
func describeDish(client *http.Client, baseURL, name string) (string, error) {
	resp, err := client.Get(baseURL + "/dishes/" + url.PathEscape(name))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d, body %s", resp.StatusCode, payload)
	}

	dish := gjson.ParseBytes(payload)
	return fmt.Sprintf("%s contains %s calories, %s mgs of sodium, and %s grams of sugar",
		name, dish.Get("cal").Raw, dish.Get("sodium").Raw, dish.Get("sugar").Raw), nil
}

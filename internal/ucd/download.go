// Package ucd downloads and parses files from the Unicode Character Database.
package ucd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// DefaultURL is the root of the published Unicode data files.
const DefaultURL = "https://www.unicode.org/Public"

// FileURL returns the URL of UCD file name for the Unicode version.
func FileURL(root, version, name string) string {
	return strings.TrimSuffix(root, "/") + "/" + version + "/ucd/" + name
}

// DownloadFilename returns the base name of the file referenced by url.
func DownloadFilename(url string) (string, error) {
	u, err := urlpkg.Parse(url)
	if err != nil {
		return "", err
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return "", fmt.Errorf("ucd: URL has no file name: %q", url)
	}
	return name, nil
}

func closeResponse(res *http.Response) {
	if res != nil && res.Body != nil {
		io.Copy(io.Discard, res.Body)
		res.Body.Close()
	}
}

func newProgressBar(size int64, name string) *progressbar.ProgressBar {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return progressbar.DefaultBytes(size, "downloading "+name)
	}
	return progressbar.DefaultBytesSilent(size, "downloading "+name)
}

// Download fetches url into directory dirname and returns the path of the
// downloaded file. Files that already exist in dirname are not downloaded
// again. Progress is displayed when stderr is a terminal.
func Download(ctx context.Context, client *http.Client, url, dirname string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if err := os.MkdirAll(dirname, 0755); err != nil {
		return "", err
	}
	name, err := DownloadFilename(url)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dirname, name)
	if fi, err := os.Stat(filename); err == nil && fi.Mode().IsRegular() && fi.Size() > 0 {
		return filename, nil
	}

	out, err := os.CreateTemp(dirname, name+".tmp.*")
	if err != nil {
		return "", err
	}
	tmp := out.Name()
	exit := func(err error) (string, error) {
		out.Close()
		os.Remove(tmp)
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return exit(err)
	}
	res, err := client.Do(req)
	if err != nil {
		return exit(err)
	}
	defer closeResponse(res)

	if res.StatusCode != http.StatusOK {
		return exit(fmt.Errorf("GET: %s: returned status code: %d",
			res.Request.URL, res.StatusCode))
	}

	bar := newProgressBar(res.ContentLength, name)
	if _, err := io.Copy(io.MultiWriter(out, bar), res.Body); err != nil {
		return exit(err)
	}
	bar.Finish()
	if err := out.Close(); err != nil {
		return exit(err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return exit(err)
	}
	return filename, nil
}

// Open downloads UCD file name for the Unicode version into the cache
// directory and opens it.
func Open(ctx context.Context, root, version, name, cacheDir string) (*os.File, error) {
	filename, err := Download(ctx, nil, FileURL(root, version, name), filepath.Join(cacheDir, version))
	if err != nil {
		return nil, err
	}
	return os.Open(filename)
}

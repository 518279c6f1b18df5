package router

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cwist/wire"
)

func staticHandler(urlPrefix, fsRoot string, method wire.Method) Handler {
	return func(req *wire.Request) *wire.Response {
		rel := strings.TrimPrefix(req.Path, urlPrefix)
		rel = strings.TrimPrefix(rel, "/")

		for _, seg := range strings.Split(rel, "/") {
			if seg == ".." {
				return statusResponse(req, 403, "forbidden")
			}
		}

		full := filepath.Join(fsRoot, filepath.FromSlash(rel))

		info, err := os.Stat(full)
		if os.IsNotExist(err) {
			return statusResponse(req, 404, "not found")
		}
		if err != nil {
			return statusResponse(req, 500, "internal error")
		}
		if info.IsDir() {
			return statusResponse(req, 403, "forbidden")
		}

		resp := wire.NewResponse(req.Version, 200)
		resp.SetHeader("Content-Length", strconv.FormatInt(info.Size(), 10))

		if method == wire.MethodHEAD {
			return resp
		}

		data, err := os.ReadFile(full)
		if err != nil {
			return statusResponse(req, 500, "internal error")
		}
		resp.SetBody(data)
		return resp
	}
}

func statusResponse(req *wire.Request, code int, text string) *wire.Response {
	resp := wire.NewResponse(req.Version, code)
	resp.SetHeader("Content-Type", "application/json")
	resp.SetBody([]byte(`{"error":"` + text + `"}`))
	return resp
}

package middleware

import (
	"fmt"
	"net/http"
	"regexp"
)

// userIDPath matches per-resource user routes such as /users/42.
var userIDPath = regexp.MustCompile(`^/users/(\d+)$`)

// route is one entry of the classification table. Fixed routes match path
// exactly; resource routes match pattern and pass the captured id to describe.
type route struct {
	method   string
	path     string
	pattern  *regexp.Regexp
	describe func(r *http.Request, id string) string
}

var routeTable = []route{
	{method: http.MethodGet, path: "/", describe: fixed("root greeting")},
	{method: http.MethodGet, path: "/hello", describe: describeHello},
	{method: http.MethodGet, path: "/health", describe: fixed("health check")},
	{method: http.MethodGet, path: "/health/ready", describe: fixed("readiness check")},
	{method: http.MethodGet, path: "/system", describe: fixed("system info")},
	{method: http.MethodPost, path: "/users", describe: fixed("user creation")},
	{method: http.MethodGet, path: "/users", describe: describeUserList},
	{method: http.MethodGet, pattern: userIDPath, describe: perUser("lookup")},
	{method: http.MethodPut, pattern: userIDPath, describe: perUser("update")},
	{method: http.MethodDelete, pattern: userIDPath, describe: perUser("deletion")},
}

// Describe returns the human-readable label of r, falling back to
// "request METHOD PATH" for anything outside the route table.
func Describe(r *http.Request) string {
	path := r.URL.Path
	for _, rt := range routeTable {
		if rt.method != r.Method {
			continue
		}
		if rt.pattern == nil {
			if rt.path == path {
				return rt.describe(r, "")
			}
			continue
		}
		if m := rt.pattern.FindStringSubmatch(path); m != nil {
			return rt.describe(r, m[1])
		}
	}
	return fmt.Sprintf("request %s %s", r.Method, path)
}

func fixed(label string) func(*http.Request, string) string {
	return func(*http.Request, string) string { return label }
}

func perUser(action string) func(*http.Request, string) string {
	return func(_ *http.Request, id string) string {
		return fmt.Sprintf("%s of user #%s", action, id)
	}
}

func describeHello(r *http.Request, _ string) string {
	q := r.URL.Query()
	name := q.Get("name")
	if name == "" {
		name = "guest"
	}
	lang := q.Get("language")
	if lang == "" {
		lang = "ko"
	}
	return fmt.Sprintf("greeting for %q (language=%s)", name, lang)
}

func describeUserList(r *http.Request, _ string) string {
	q := r.URL.Query()
	page := orDefault(q.Get("page"), "1")
	limit := orDefault(q.Get("limit"), "10")
	label := fmt.Sprintf("user list (page=%s, limit=%s", page, limit)
	if s := q.Get("search"); s != "" {
		label += fmt.Sprintf(", search=%q", s)
	}
	if role := q.Get("role"); role != "" {
		label += ", role=" + role
	}
	return label + ")"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Package clientinfo classifies User-Agent strings into a best-effort
// description of the calling software.
//
// Classification is pure and deterministic: the same input always yields the
// same Info, and no input ever produces an error. Three independent passes
// (bot detection, OS detection, browser detection) run over a lowercased copy
// of the string, each as an ordered list of first-match-wins rules. A bot match
// suppresses the browser pass; the passes do not otherwise interact. Fields
// with no matching rule keep their documented defaults.
package clientinfo

import (
	"regexp"
	"strings"
)

// Info is the derived, non-authoritative classification of a User-Agent
// string. It carries no identity beyond the input.
type Info struct {
	Browser        string
	BrowserVersion string
	OS             string
	OSVersion      string
	Platform       string
	DeviceType     string
	IsMobile       bool
	IsBot          bool
	Engine         string
}

// Unknown is the default for every string field except DeviceType.
const Unknown = "Unknown"

// defaultInfo is the all-defaults classification for inputs matching nothing.
func defaultInfo() Info {
	return Info{
		Browser:        Unknown,
		BrowserVersion: Unknown,
		OS:             Unknown,
		OSVersion:      Unknown,
		Platform:       Unknown,
		DeviceType:     "Desktop",
		Engine:         Unknown,
	}
}

// botKeywords mark automated clients, in match order.
var botKeywords = []string{"bot", "crawler", "spider", "scraper", "curl", "wget", "python", "postman"}

// botNames assigns a tool name to a detected bot, first match wins. Python
// clients are refined by their HTTP library.
var botNames = []struct {
	keyword string
	refine  string // secondary keyword, empty for none
	name    string
}{
	{"curl", "", "cURL"},
	{"postman", "", "Postman"},
	{"python", "requests", "Python Requests"},
	{"python", "httpx", "Python HTTPX"},
	{"python", "", "Python HTTP Client"},
	{"googlebot", "", "Googlebot"},
	{"bingbot", "", "Bingbot"},
}

// Version extraction patterns. All inputs are lowercased before matching.
var (
	reWindowsNT  = regexp.MustCompile(`windows nt ([\d.]+)`)
	reMacVersion = regexp.MustCompile(`mac os x ([\d_]+)`)
	reAndroidVer = regexp.MustCompile(`android ([\d.]+)`)
	reIOSVersion = regexp.MustCompile(`os ([\d_]+)`)
	reEdgeVer    = regexp.MustCompile(`edge?/([\d.]+)`)
	reChromeVer  = regexp.MustCompile(`chrome/([\d.]+)`)
	reFirefoxVer = regexp.MustCompile(`firefox/([\d.]+)`)
	reSafariVer  = regexp.MustCompile(`version/([\d.]+)`)
	reOperaVer   = regexp.MustCompile(`(?:opera|opr)/([\d.]+)`)
)

// windowsVersions maps NT kernel versions to marketing names.
var windowsVersions = map[string]string{
	"10.0": "10/11",
	"6.3":  "8.1",
	"6.1":  "7",
}

// Classify derives an Info from a raw User-Agent header value. It never
// fails; unrecognized input yields all defaults.
func Classify(userAgent string) Info {
	info := defaultInfo()
	ua := strings.ToLower(userAgent)
	if ua == "" {
		return info
	}

	classifyBot(ua, &info)
	classifyOS(ua, &info)
	if !info.IsBot {
		classifyBrowser(ua, &info)
	}
	return info
}

func classifyBot(ua string, info *Info) {
	matched := false
	for _, kw := range botKeywords {
		if strings.Contains(ua, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return
	}

	info.IsBot = true
	info.DeviceType = "Bot/Tool"

	for _, rule := range botNames {
		if !strings.Contains(ua, rule.keyword) {
			continue
		}
		if rule.refine != "" && !strings.Contains(ua, rule.refine) {
			continue
		}
		info.Browser = rule.name
		return
	}
}

func classifyOS(ua string, info *Info) {
	switch {
	case strings.Contains(ua, "windows"):
		info.OS = "Windows"
		info.Platform = "Windows"
		if m := reWindowsNT.FindStringSubmatch(ua); m != nil {
			if name, ok := windowsVersions[m[1]]; ok {
				info.OSVersion = name
			}
		}

	case strings.Contains(ua, "macintosh") || strings.Contains(ua, "mac os x"):
		info.OS = "macOS"
		info.Platform = "Mac"
		if m := reMacVersion.FindStringSubmatch(ua); m != nil {
			info.OSVersion = strings.ReplaceAll(m[1], "_", ".")
		}
		if strings.Contains(ua, "intel") {
			info.Platform = "Intel Mac"
		} else if strings.Contains(ua, "arm64") || strings.Contains(ua, "apple silicon") {
			info.Platform = "Apple Silicon Mac"
		}

	case strings.Contains(ua, "linux"):
		info.OS = "Linux"
		info.Platform = "Linux"
		for _, distro := range []struct{ keyword, name string }{
			{"ubuntu", "Ubuntu"},
			{"fedora", "Fedora"},
			{"debian", "Debian"},
			{"centos", "CentOS"},
		} {
			if strings.Contains(ua, distro.keyword) {
				info.OS = distro.name
				break
			}
		}

	case strings.Contains(ua, "android"):
		info.OS = "Android"
		info.Platform = "Android"
		info.DeviceType = "Mobile"
		info.IsMobile = true
		if m := reAndroidVer.FindStringSubmatch(ua); m != nil {
			info.OSVersion = m[1]
		}

	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		info.OS = "iOS"
		if strings.Contains(ua, "iphone") {
			info.Platform = "iPhone"
			info.DeviceType = "iPhone"
			info.IsMobile = true
		} else {
			info.Platform = "iPad"
			info.DeviceType = "iPad"
		}
		if m := reIOSVersion.FindStringSubmatch(ua); m != nil {
			info.OSVersion = strings.ReplaceAll(m[1], "_", ".")
		}
	}
}

func classifyBrowser(ua string, info *Info) {
	switch {
	case strings.Contains(ua, "edg/") || strings.Contains(ua, "edge/"):
		info.Browser = "Edge"
		info.Engine = "Blink"
		if m := reEdgeVer.FindStringSubmatch(ua); m != nil {
			info.BrowserVersion = m[1]
		}

	case strings.Contains(ua, "chrome/") && !strings.Contains(ua, "edg"):
		info.Browser = "Chrome"
		info.Engine = "Blink"
		if m := reChromeVer.FindStringSubmatch(ua); m != nil {
			info.BrowserVersion = m[1]
		}

	case strings.Contains(ua, "firefox/"):
		info.Browser = "Firefox"
		info.Engine = "Gecko"
		if m := reFirefoxVer.FindStringSubmatch(ua); m != nil {
			info.BrowserVersion = m[1]
		}

	case strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome"):
		info.Browser = "Safari"
		info.Engine = "WebKit"
		if m := reSafariVer.FindStringSubmatch(ua); m != nil {
			info.BrowserVersion = m[1]
		}

	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr/"):
		info.Browser = "Opera"
		info.Engine = "Blink"
		if m := reOperaVer.FindStringSubmatch(ua); m != nil {
			info.BrowserVersion = m[1]
		}
	}
}

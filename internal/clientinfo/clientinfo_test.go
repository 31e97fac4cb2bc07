package clientinfo

import "testing"

func TestClassify_Browsers(t *testing.T) {
	tests := []struct {
		name        string
		ua          string
		wantBrowser string
		wantVersion string
		wantEngine  string
	}{
		{
			name:        "chrome on windows",
			ua:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.5735.134 Safari/537.36",
			wantBrowser: "Chrome",
			wantVersion: "114.0.5735.134",
			wantEngine:  "Blink",
		},
		{
			name:        "edge takes precedence over chrome",
			ua:          "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36 Edg/114.0.1823.43",
			wantBrowser: "Edge",
			wantVersion: "114.0.1823.43",
			wantEngine:  "Blink",
		},
		{
			name:        "firefox",
			ua:          "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0",
			wantBrowser: "Firefox",
			wantVersion: "115.0",
			wantEngine:  "Gecko",
		},
		{
			name:        "safari",
			ua:          "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Safari/605.1.15",
			wantBrowser: "Safari",
			wantVersion: "16.5",
			wantEngine:  "WebKit",
		},
		{
			name:        "legacy opera",
			ua:          "Opera/9.80 (Windows NT 6.1) Presto/2.12.388 Version/12.16",
			wantBrowser: "Opera",
			wantVersion: "9.80",
			wantEngine:  "Blink",
		},
		{
			name:        "no browser tokens",
			ua:          "SomeCustomClient/1.0",
			wantBrowser: Unknown,
			wantVersion: Unknown,
			wantEngine:  Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Classify(tt.ua)
			if info.Browser != tt.wantBrowser {
				t.Errorf("Browser = %q, want %q", info.Browser, tt.wantBrowser)
			}
			if info.BrowserVersion != tt.wantVersion {
				t.Errorf("BrowserVersion = %q, want %q", info.BrowserVersion, tt.wantVersion)
			}
			if info.Engine != tt.wantEngine {
				t.Errorf("Engine = %q, want %q", info.Engine, tt.wantEngine)
			}
			if info.IsBot {
				t.Error("IsBot = true for browser user agent")
			}
		})
	}
}

func TestClassify_Bots(t *testing.T) {
	tests := []struct {
		name        string
		ua          string
		wantBrowser string
	}{
		{"curl", "curl/8.1.2", "cURL"},
		{"postman", "PostmanRuntime/7.32.3", "Postman"},
		{"python requests", "python-requests/2.31.0", "Python Requests"},
		{"python httpx", "python-httpx/0.24.1", "Python HTTPX"},
		{"bare python", "Python-urllib/3.11", "Python HTTP Client"},
		{"googlebot", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", "Googlebot"},
		{"bingbot", "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)", "Bingbot"},
		{"wget has no browser name", "Wget/1.21.3", Unknown},
		{"generic spider", "somespider/0.1", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Classify(tt.ua)
			if !info.IsBot {
				t.Fatalf("IsBot = false for %q", tt.ua)
			}
			if info.DeviceType != "Bot/Tool" {
				t.Errorf("DeviceType = %q, want Bot/Tool", info.DeviceType)
			}
			if info.Browser != tt.wantBrowser {
				t.Errorf("Browser = %q, want %q", info.Browser, tt.wantBrowser)
			}
		})
	}
}

func TestClassify_BotSuppressesBrowserDetection(t *testing.T) {
	// Contains chrome tokens, but the bot keyword wins and the browser pass
	// is skipped entirely.
	info := Classify("Mozilla/5.0 (compatible; MyCrawler/1.0) Chrome/114.0 Safari/537.36")

	if !info.IsBot {
		t.Fatal("IsBot = false for crawler user agent")
	}
	if info.Browser == "Chrome" {
		t.Error("browser detection ran for a bot user agent")
	}
	if info.Engine != Unknown {
		t.Errorf("Engine = %q, want Unknown for bot", info.Engine)
	}
}

func TestClassify_OperatingSystems(t *testing.T) {
	tests := []struct {
		name         string
		ua           string
		wantOS       string
		wantVersion  string
		wantPlatform string
		wantDevice   string
		wantMobile   bool
	}{
		{
			name:         "windows 10",
			ua:           "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
			wantOS:       "Windows",
			wantVersion:  "10/11",
			wantPlatform: "Windows",
			wantDevice:   "Desktop",
		},
		{
			name:         "windows 8.1",
			ua:           "Mozilla/5.0 (Windows NT 6.3; Win64)",
			wantOS:       "Windows",
			wantVersion:  "8.1",
			wantPlatform: "Windows",
			wantDevice:   "Desktop",
		},
		{
			name:         "windows 7",
			ua:           "Mozilla/5.0 (Windows NT 6.1)",
			wantOS:       "Windows",
			wantVersion:  "7",
			wantPlatform: "Windows",
			wantDevice:   "Desktop",
		},
		{
			name:         "windows with unmapped NT version",
			ua:           "Mozilla/5.0 (Windows NT 5.1)",
			wantOS:       "Windows",
			wantVersion:  Unknown,
			wantPlatform: "Windows",
			wantDevice:   "Desktop",
		},
		{
			name:         "intel mac",
			ua:           "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
			wantOS:       "macOS",
			wantVersion:  "10.15.7",
			wantPlatform: "Intel Mac",
			wantDevice:   "Desktop",
		},
		{
			name:         "apple silicon mac",
			ua:           "Mozilla/5.0 (Macintosh; ARM64 Mac OS X 14_2)",
			wantOS:       "macOS",
			wantVersion:  "14.2",
			wantPlatform: "Apple Silicon Mac",
			wantDevice:   "Desktop",
		},
		{
			name:         "ubuntu linux",
			ua:           "Mozilla/5.0 (X11; Ubuntu; Linux x86_64)",
			wantOS:       "Ubuntu",
			wantVersion:  Unknown,
			wantPlatform: "Linux",
			wantDevice:   "Desktop",
		},
		{
			name:         "plain linux",
			ua:           "Mozilla/5.0 (X11; Linux x86_64)",
			wantOS:       "Linux",
			wantVersion:  Unknown,
			wantPlatform: "Linux",
			wantDevice:   "Desktop",
		},
		{
			name:         "android without linux token",
			ua:           "Mozilla/5.0 (Android 13; Mobile)",
			wantOS:       "Android",
			wantVersion:  "13",
			wantPlatform: "Android",
			wantDevice:   "Mobile",
			wantMobile:   true,
		},
		{
			name:         "iphone",
			ua:           "Mozilla/5.0 (iPhone; CPU iPhone OS 16_4)",
			wantOS:       "iOS",
			wantVersion:  "16.4",
			wantPlatform: "iPhone",
			wantDevice:   "iPhone",
			wantMobile:   true,
		},
		{
			name:         "ipad is not mobile",
			ua:           "Mozilla/5.0 (iPad; CPU OS 16_4)",
			wantOS:       "iOS",
			wantVersion:  "16.4",
			wantPlatform: "iPad",
			wantDevice:   "iPad",
			wantMobile:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Classify(tt.ua)
			if info.OS != tt.wantOS {
				t.Errorf("OS = %q, want %q", info.OS, tt.wantOS)
			}
			if info.OSVersion != tt.wantVersion {
				t.Errorf("OSVersion = %q, want %q", info.OSVersion, tt.wantVersion)
			}
			if info.Platform != tt.wantPlatform {
				t.Errorf("Platform = %q, want %q", info.Platform, tt.wantPlatform)
			}
			if info.DeviceType != tt.wantDevice {
				t.Errorf("DeviceType = %q, want %q", info.DeviceType, tt.wantDevice)
			}
			if info.IsMobile != tt.wantMobile {
				t.Errorf("IsMobile = %t, want %t", info.IsMobile, tt.wantMobile)
			}
		})
	}
}

func TestClassify_LinuxWinsOverAndroidToken(t *testing.T) {
	// The OS cascade checks linux before android; a typical Android user
	// agent carries both tokens and lands on Linux.
	info := Classify("Mozilla/5.0 (Linux; Android 13; Pixel 7)")
	if info.OS != "Linux" {
		t.Errorf("OS = %q, want Linux (cascade order)", info.OS)
	}
}

func TestClassify_EmptyAndUnmatched(t *testing.T) {
	for _, ua := range []string{"", "完全不相干的字串", "Mozilla/5.0 (Unknown Device)"} {
		info := Classify(ua)
		want := defaultInfo()
		if info != want {
			t.Errorf("Classify(%q) = %+v, want all defaults %+v", ua, info, want)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	ua := "Mozilla/5.0 (Windows NT 10.0) Chrome/114.0 Safari/537.36"
	if Classify(ua) != Classify(ua) {
		t.Error("Classify is not deterministic")
	}
}

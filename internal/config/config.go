package config

type Config struct {
	Elasticsearch struct {
		Enable   bool   `json:"enable"`
		Username string `json:"username"`
		Password string `json:"password"`
		Address  string `json:"address"`
	} `json:"elasticsearch"`

	Rod struct {
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		UserAgent            string `json:"user_agent"`
		Leakless             bool   `json:"leakless"`
		// Bin是Chrome可执行文件路径,EdgeBin是Edge可执行文件路径
		// 留空时由launcher自动探测
		Bin     string `json:"bin"`
		EdgeBin string `json:"edge_bin"`
	} `json:"rod"`

	Chromedp struct {
		LifeTime             int    `json:"life_time"`
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		MuteAudio            bool   `json:"mute_audio"`
		UserAgent            string `json:"user_agent"`
		ExecPath             string `json:"exec_path"`
		EdgeExecPath         string `json:"edge_exec_path"`
	} `json:"chromedp"`

	// Scraper 评论采集循环的参数,零值字段由ParseConfig填充默认值
	Scraper struct {
		ScrollLimit          int `json:"scroll_limit"`
		StallLimit           int `json:"stall_limit"`
		BatchSize            int `json:"batch_size"`
		ScrollStepPixels     int `json:"scroll_step_pixels"`
		StandardSleepSeconds int `json:"standard_sleep_seconds"`
		RandomDelaySeconds   int `json:"random_delay_seconds"`
	} `json:"scraper"`

	Embedder struct {
		Enable    bool   `json:"enable"`
		Host      string `json:"host"`
		Port      int    `json:"port"`
		Model     string `json:"model"`
		BatchSize int    `json:"batch_size"`
	} `json:"embedder"`
}

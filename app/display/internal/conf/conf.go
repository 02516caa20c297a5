package conf

type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
	Market *Market `json:"market"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type Data struct {
	Database *Database `json:"database"`
	History  *History  `json:"history"`
}

type Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
}

// History 未配置数据库时的内存历史记录
type History struct {
	Size int32 `json:"size"`
}

type Market struct {
	CatalogFile string       `json:"catalog_file"`
	Latency     *Latency     `json:"latency"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
}

// Latency 模拟延迟，格式同 time.ParseDuration
type Latency struct {
	Trends        string `json:"trends"`
	PainPoints    string `json:"pain_points"`
	Competitors   string `json:"competitors"`
	Opportunities string `json:"opportunities"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}

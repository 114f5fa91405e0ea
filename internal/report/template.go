package report

// reportTemplate is the single-page report: overview cards, fun facts,
// chart.js charts with inline data, ranking tables and word/emoji chips.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Discord Stats &mdash; {{.Username}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.7/dist/chart.umd.min.js"></script>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Noto Sans", Ubuntu, sans-serif;
  background: #1a1a2e; color: #e0e0e0; line-height: 1.5;
}
.container { max-width: 1100px; margin: 0 auto; padding: 24px 20px 60px; }
.header {
  text-align: center; padding: 48px 0 32px;
  background: linear-gradient(135deg, #1a1a2e 0%, #16213e 50%, #0f3460 100%);
  border-bottom: 2px solid #5865f2;
  margin-bottom: 32px;
}
.header h1 { font-size: 28px; color: #fff; margin-bottom: 4px; }
.header .sub { color: #949ba4; font-size: 14px; }
.card {
  background: #222244; border-radius: 12px; padding: 24px;
  margin-bottom: 20px; border: 1px solid #333366;
}
.card h2 {
  font-size: 16px; text-transform: uppercase; letter-spacing: 0.05em;
  color: #5865f2; margin-bottom: 16px; font-weight: 700;
}
.card h3 { font-size: 14px; color: #949ba4; margin-bottom: 12px; font-weight: 600; }
.stat-grid {
  display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr));
  gap: 16px; margin-bottom: 8px;
}
.stat-box {
  background: #1a1a3a; border-radius: 10px; padding: 16px; text-align: center;
  border: 1px solid #2a2a5a;
}
.stat-box .num { font-size: 28px; font-weight: 700; color: #fff; }
.stat-box .label { font-size: 12px; color: #949ba4; margin-top: 2px; }
.fun-facts { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 12px; }
.fact {
  background: #1a1a3a; border-radius: 8px; padding: 14px 16px;
  border-left: 3px solid #5865f2; font-size: 14px;
}
.fact .val { color: #fff; font-weight: 600; }
.chart-row { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
@media (max-width: 700px) { .chart-row { grid-template-columns: 1fr; } }
.chart-box {
  background: #1a1a3a; border-radius: 10px; padding: 16px;
  border: 1px solid #2a2a5a; position: relative;
}
.chart-box canvas { max-height: 300px; }
.chart-wide { grid-column: 1 / -1; }
.chart-wide canvas { max-height: 250px; }
table { width: 100%; border-collapse: collapse; font-size: 14px; }
th { text-align: left; color: #949ba4; font-weight: 600; padding: 8px 12px; border-bottom: 1px solid #333366; font-size: 12px; text-transform: uppercase; }
td { padding: 8px 12px; border-bottom: 1px solid #2a2a4a; }
tr:hover { background: #2a2a4a; }
.rank { color: #5865f2; font-weight: 700; width: 30px; }
.num { text-align: right; font-weight: 600; color: #fff; white-space: nowrap; }
.server { color: #949ba4; font-size: 12px; }
.word-chip, .emoji-chip {
  display: inline-block; background: #1a1a3a; border: 1px solid #2a2a5a;
  border-radius: 20px; padding: 4px 12px; margin: 3px; font-size: 13px;
}
.word-chip b, .emoji-chip b { color: #5865f2; margin-left: 4px; }
.emoji-chip { font-size: 16px; }
.two-col { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
@media (max-width: 700px) { .two-col { grid-template-columns: 1fr; } }
</style>
</head>
<body>

<div class="header">
  <h1>{{.Username}}&rsquo;s Discord Wrapped</h1>
  <div class="sub">
    {{.FirstDate}} &mdash; {{.LastDate}}
    &middot; {{.Stats.ActiveDays}} active days
  </div>
</div>

<div class="container">

<div class="card">
  <h2>Overview</h2>
  <div class="stat-grid">
    <div class="stat-box"><div class="num">{{.Stats.TotalMessages}}</div><div class="label">Messages Sent</div></div>
    <div class="stat-box"><div class="num">{{.Stats.TotalWords}}</div><div class="label">Words Typed</div></div>
    <div class="stat-box"><div class="num">{{.Stats.TotalCharacters}}</div><div class="label">Characters</div></div>
    <div class="stat-box"><div class="num">{{.Stats.TotalDMs}}</div><div class="label">DM Conversations</div></div>
    <div class="stat-box"><div class="num">{{.Stats.TotalServers}}</div><div class="label">Servers</div></div>
    <div class="stat-box"><div class="num">{{.Stats.AttachmentCount}}</div><div class="label">Attachments</div></div>
  </div>
</div>

<div class="card">
  <h2>Fun Facts</h2>
  <div class="fun-facts">
    <div class="fact">Busiest day: <span class="val">{{.Stats.BusiestDay}}</span> with <span class="val">{{.Stats.BusiestDayCount}}</span> messages</div>
    <div class="fact">Longest daily streak: <span class="val">{{.Stats.LongestStreak}}</span> days starting <span class="val">{{.Stats.LongestStreakStart}}</span></div>
    <div class="fact">Peak hour: <span class="val">{{printf "%02d:00" .Stats.PeakHour}}</span> ({{.Stats.PeakHourCount}} messages)</div>
    <div class="fact">Favorite day: <span class="val">{{.Stats.PeakWeekday}}</span> ({{.Stats.PeakWeekdayCount}} messages)</div>
    <div class="fact">Avg message length: <span class="val">{{.Stats.AvgMessageLength}}</span> chars</div>
    <div class="fact">Longest message: <span class="val">{{.Stats.MaxMessageLength}}</span> characters</div>
    <div class="fact">You&rsquo;re a <span class="val">{{if .NightOwl}}Night Owl 🦉{{else}}Early Bird 🐦{{end}}</span></div>
  </div>
</div>

<div class="card">
  <h2>Activity Over Time</h2>
  <div class="chart-row">
    <div class="chart-box chart-wide"><canvas id="monthlyChart"></canvas></div>
    <div class="chart-box"><canvas id="hourlyChart"></canvas></div>
    <div class="chart-box"><canvas id="dowChart"></canvas></div>
  </div>
</div>

<div class="card">
  <h2>When You Chat</h2>
  <div class="chart-row">
    <div class="chart-box"><canvas id="todChart"></canvas></div>
    <div class="chart-box" style="display:flex;align-items:center;justify-content:center;">
      <div style="text-align:center;">
        <div style="font-size:48px;margin-bottom:8px;">{{if .NightOwl}}🦉{{else}}🐦{{end}}</div>
        <div style="font-size:20px;font-weight:700;color:#fff;">{{if .NightOwl}}Night Owl{{else}}Early Bird{{end}}</div>
        <div style="color:#949ba4;font-size:13px;margin-top:4px;">
          {{.TodPercent}}% of your messages are in the {{.TodWindow}} hours
        </div>
      </div>
    </div>
  </div>
</div>

<div class="card">
  <h2>Top Friends (by DM messages you sent)</h2>
  <div class="chart-row">
    <div class="chart-box chart-wide"><canvas id="dmChart"></canvas></div>
  </div>
  <div class="two-col" style="margin-top:16px;">
    <div>
      <h3>Top DM Conversations</h3>
      <table>
        <thead><tr><th>#</th><th>Friend</th><th style="text-align:right">Messages</th></tr></thead>
        <tbody>
        {{range $i, $d := .Stats.TopDMs}}<tr><td class="rank">{{inc $i}}</td><td>{{$d.Name}}</td><td class="num">{{$d.Count}}</td></tr>
        {{end}}</tbody>
      </table>
    </div>
    <div>
      <h3>Top Group DMs</h3>
      <table>
        <thead><tr><th>#</th><th>Group</th><th style="text-align:right">Messages</th></tr></thead>
        <tbody>
        {{range $i, $d := .Stats.TopGroupDMs}}<tr><td class="rank">{{inc $i}}</td><td>{{$d.Name}}</td><td class="num">{{$d.Count}}</td></tr>
        {{end}}</tbody>
      </table>
    </div>
  </div>
</div>

<div class="card">
  <h2>Top Servers</h2>
  <div class="chart-row">
    <div class="chart-box chart-wide"><canvas id="srvChart"></canvas></div>
  </div>
  <div class="two-col" style="margin-top:16px;">
    <div>
      <h3>By Server</h3>
      <table>
        <thead><tr><th>#</th><th>Server</th><th style="text-align:right">Messages</th></tr></thead>
        <tbody>
        {{range $i, $d := .Stats.TopServers}}<tr><td class="rank">{{inc $i}}</td><td>{{$d.Name}}</td><td class="num">{{$d.Count}}</td></tr>
        {{end}}</tbody>
      </table>
    </div>
    <div>
      <h3>Top Server Channels</h3>
      <table>
        <thead><tr><th>#</th><th>Channel</th><th>Server</th><th style="text-align:right">Messages</th></tr></thead>
        <tbody>
        {{range $i, $c := .Stats.TopChannels}}<tr><td class="rank">{{inc $i}}</td><td>{{$c.Name}}</td><td class="server">{{$c.Server}}</td><td class="num">{{$c.Count}}</td></tr>
        {{end}}</tbody>
      </table>
    </div>
  </div>
</div>

<div class="card">
  <h2>Words &amp; Emoji</h2>
  <div class="two-col">
    <div>
      <h3>Most Used Words</h3>
      <div>{{range .Stats.TopWords}}<span class="word-chip">{{.Name}} <b>{{.Count}}</b></span>{{end}}</div>
    </div>
    <div>
      <h3>Most Used Emoji</h3>
      <div>{{range .Stats.TopEmoji}}<span class="emoji-chip">{{.Name}} <b>{{.Count}}</b></span>{{else}}<span style="color:#949ba4">No emoji found</span>{{end}}</div>
    </div>
  </div>
</div>

</div>

<script>
Chart.defaults.color = "#949ba4";
Chart.defaults.borderColor = "#2a2a5a";
const purple = "#5865f2";
const purpleAlpha = "rgba(88,101,242,0.3)";

new Chart(document.getElementById("monthlyChart"), {
  type: "line",
  data: {
    labels: {{.MonthlyLabels}},
    datasets: [{ label: "Messages", data: {{.MonthlyValues}}, borderColor: purple, backgroundColor: purpleAlpha, fill: true, tension: 0.3, pointRadius: 0 }]
  },
  options: {
    plugins: { legend: { display: false } },
    scales: { x: { ticks: { maxTicksLimit: 20 } }, y: { beginAtZero: true } }
  }
});

new Chart(document.getElementById("hourlyChart"), {
  type: "bar",
  data: {
    labels: {{.HourlyLabels}},
    datasets: [{ label: "Messages", data: {{.HourlyValues}}, backgroundColor: purple, borderRadius: 4 }]
  },
  options: {
    plugins: { legend: { display: false }, title: { display: true, text: "By Hour of Day" } },
    scales: { y: { beginAtZero: true } }
  }
});

new Chart(document.getElementById("dowChart"), {
  type: "bar",
  data: {
    labels: {{.DowLabels}},
    datasets: [{ label: "Messages", data: {{.DowValues}}, backgroundColor: "#e94560", borderRadius: 4 }]
  },
  options: {
    plugins: { legend: { display: false }, title: { display: true, text: "By Day of Week" } },
    scales: { y: { beginAtZero: true } }
  }
});

new Chart(document.getElementById("todChart"), {
  type: "doughnut",
  data: {
    labels: {{.TodLabels}},
    datasets: [{ data: {{.TodValues}}, backgroundColor: ["#16213e","#e94560","#f5a623","#5865f2"], borderWidth: 0 }]
  },
  options: { plugins: { legend: { position: "bottom" } }, cutout: "60%" }
});

new Chart(document.getElementById("dmChart"), {
  type: "bar",
  data: {
    labels: {{.DMLabels}},
    datasets: [{ label: "Messages", data: {{.DMValues}}, backgroundColor: "#e94560", borderRadius: 4 }]
  },
  options: {
    indexAxis: "y",
    plugins: { legend: { display: false } },
    scales: { x: { beginAtZero: true } }
  }
});

new Chart(document.getElementById("srvChart"), {
  type: "bar",
  data: {
    labels: {{.SrvLabels}},
    datasets: [{ label: "Messages", data: {{.SrvValues}}, backgroundColor: purple, borderRadius: 4 }]
  },
  options: {
    indexAxis: "y",
    plugins: { legend: { display: false } },
    scales: { x: { beginAtZero: true } }
  }
});
</script>
</body>
</html>
`

package server

// dashboardPage is the single-page client. It renders whatever snapshot
// the hub pushes and sends select/close commands back; all state lives
// on the server.
const dashboardPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>FVG Dashboard</title>
<style>
  body { font-family: sans-serif; margin: 20px; background: #12151c; color: #e6e6e6; }
  table { border-collapse: collapse; width: 100%; }
  th, td { padding: 6px 10px; border-bottom: 1px solid #2a2f3a; text-align: right; }
  th { color: #9aa4b2; }
  td.sym { text-align: left; color: #7ab8ff; cursor: pointer; }
  .green { color: #4caf50; }
  .red { color: #ef5350; }
  #status { margin: 10px 0; color: #9aa4b2; }
  #overlay { display: none; position: fixed; inset: 0; background: rgba(0,0,0,0.7); }
  #modal { background: #1b2029; margin: 5% auto; padding: 16px; width: 720px; border-radius: 6px; }
  #close { float: right; cursor: pointer; color: #9aa4b2; }
</style>
</head>
<body>
<h2>Pair Scanner</h2>
<div id="status">Loading...</div>
<table id="pairs"></table>
<div id="overlay">
  <div id="modal">
    <span id="close">[x]</span>
    <h3 id="modal-title"></h3>
    <canvas id="chart" width="680" height="360"></canvas>
  </div>
</div>
<script>
var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
var snap = null;

ws.onmessage = function (ev) {
  snap = JSON.parse(ev.data);
  renderTable();
  renderOverlay();
};

function cell(text, cls) {
  return "<td" + (cls ? " class='" + cls + "'" : "") + ">" + text + "</td>";
}

function renderTable() {
  var status = document.getElementById("status");
  var table = document.getElementById("pairs");
  if (snap.loading_summary) { status.textContent = "Loading..."; table.innerHTML = ""; return; }
  if (snap.table.empty_message) { status.textContent = snap.table.empty_message; table.innerHTML = ""; return; }
  status.textContent = snap.table.rows.length + " pairs";

  var html = "<tr><th>Pair</th><th>Price</th><th>EMA dist</th><th>FVG</th><th>Win rate</th>" +
             "<th>Bull</th><th>Bear</th><th>5m</th><th>15m</th><th>1h</th><th>4h</th></tr>";
  snap.table.rows.forEach(function (r) {
    html += "<tr><td class='sym' onclick='selectPair(\"" + r.symbol + "\")'>" + r.symbol + "</td>" +
      cell(r.price) + cell(r.ema_distance) + cell(r.fvg_count) + cell(r.win_rate) +
      cell(r.bullish, r.bullish_color) + cell(r.bearish, r.bearish_color);
    r.zones.forEach(function (z) { html += cell(z.text, z.color); });
    html += "</tr>";
  });
  table.innerHTML = html;
}

function selectPair(pair) { ws.send(JSON.stringify({ command: "select", pair: pair })); }
document.getElementById("close").onclick = function () { ws.send(JSON.stringify({ command: "close" })); };

function renderOverlay() {
  var overlay = document.getElementById("overlay");
  if (!snap.selected_pair) { overlay.style.display = "none"; return; }
  overlay.style.display = "block";
  document.getElementById("modal-title").textContent = snap.selected_pair;
  drawChart(snap.chart || { labels: [], close: [], ema: [], bands: [] });
}

function drawChart(chart) {
  var canvas = document.getElementById("chart");
  var ctx = canvas.getContext("2d");
  ctx.clearRect(0, 0, canvas.width, canvas.height);

  var values = chart.close.concat(chart.ema);
  chart.bands.forEach(function (b) { values.push(b.low, b.high); });
  if (values.length === 0) {
    ctx.fillStyle = "#9aa4b2";
    ctx.fillText("Loading series...", 20, 30);
    return;
  }

  var min = Math.min.apply(null, values), max = Math.max.apply(null, values);
  if (min === max) { min -= 1; max += 1; }
  var pad = 10;
  function y(v) { return canvas.height - pad - (v - min) / (max - min) * (canvas.height - 2 * pad); }
  function x(i) { return pad + i / Math.max(chart.close.length - 1, 1) * (canvas.width - 2 * pad); }

  chart.bands.forEach(function (b) {
    ctx.fillStyle = b.color;
    ctx.fillRect(pad, y(b.high), canvas.width - 2 * pad, y(b.low) - y(b.high));
    ctx.fillStyle = "#ef5350";
    ctx.fillText(b.label, pad + 4, y(b.high) + 12);
  });

  function drawLine(series, color) {
    if (series.length === 0) return;
    ctx.strokeStyle = color;
    ctx.beginPath();
    series.forEach(function (v, i) { i === 0 ? ctx.moveTo(x(i), y(v)) : ctx.lineTo(x(i), y(v)); });
    ctx.stroke();
  }
  drawLine(chart.close, "#7ab8ff");
  drawLine(chart.ema, "#ffb74d");
}
</script>
</body>
</html>
`
